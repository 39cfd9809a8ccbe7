package dto

// JoinCommunityRequest 定义了提交入社申请的请求数据结构
type JoinCommunityRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"` // 申请理由，可选
}

// RejectRequest 定义了驳回申请时附带的理由
type RejectRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// RequestCommunityRequest 定义了普通用户提交建社申请的请求数据结构
type RequestCommunityRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty"`
	Category    string `json:"category" binding:"omitempty"`
}
