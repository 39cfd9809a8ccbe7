package dto

// CreateCommunityRequest 定义了创建社区的请求数据结构
type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required,max=100"`  // 社区名称，必填
	Description string `json:"description" binding:"omitempty"`  // 社区简介
	Category    string `json:"category" binding:"omitempty"`     // 社区分类
	Color       string `json:"color" binding:"omitempty,max=30"` // 前端展示用主题色
}

// UpdateCommunityRequest 定义了更新社区资料的请求数据结构，字段均可选
type UpdateCommunityRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty"`
	Category    *string `json:"category" binding:"omitempty"`
	Color       *string `json:"color" binding:"omitempty,max=30"`
}
