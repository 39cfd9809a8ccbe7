package dto

import "github.com/Xushengqwer/community_service/models/enums"

// CreatePostRequest 定义了创建帖子的请求数据结构
// - 作者身份不从请求体读取，由网关透传的身份上下文填充
type CreatePostRequest struct {
	Title       string `json:"title" binding:"required,max=255"`   // 帖子标题，必填
	Content     string `json:"content" binding:"omitempty"`        // 帖子正文，可选
	Community   string `json:"community" binding:"required"`       // 所属社区名称，必填
	ImageURL    string `json:"imageUrl" binding:"omitempty"`       // 配图 URL，可选，仅保存引用
	AIGenerated bool   `json:"aiGenerated" binding:"omitempty"`    // 标记为 AI 内容则进入待审核路径
}

// CreateAIPostRequest 定义了管理员直接注入 AI 草稿的请求数据结构
type CreateAIPostRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	Content   string `json:"content" binding:"omitempty"`
	Community string `json:"community" binding:"required"`
}

// ValidatePostRequest 定义审核裁定的请求数据结构
// - 只接受 1 (validated) 或 2 (rejected)，其余值在服务层报前置条件错误
type ValidatePostRequest struct {
	Status enums.ValidationStatus `json:"status" binding:"required"`
}

// EditPostRequest 定义内容编辑的请求数据结构，两个字段都可选
type EditPostRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Content *string `json:"content" binding:"omitempty"`
}

// CommentRequest 定义追加评论的请求数据结构
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ReactRequest 定义反应切换的请求数据结构
type ReactRequest struct {
	Type string `json:"type" binding:"required,max=30"`
}

// ListPostsQuery 定义公开帖子列表的查询参数
type ListPostsQuery struct {
	Community string `form:"community" binding:"omitempty,max=100"` // 可选的社区名称过滤
	Limit     int    `form:"limit" binding:"omitempty,gt=0,lte=100"`
}
