package vo

// 本文件中的包装类型仅用于 Swagger 文档生成，
// 运行时统一使用 go-common 的 response.APIResponse 泛型响应。

// PostResponseWrapper 单个帖子响应的文档包装
type PostResponseWrapper struct {
	Code    int     `json:"code"`
	Message string  `json:"message,omitempty"`
	Data    *PostVO `json:"data,omitempty"`
}

// PostListResponseWrapper 帖子列表响应的文档包装
type PostListResponseWrapper struct {
	Code    int       `json:"code"`
	Message string    `json:"message,omitempty"`
	Data    []*PostVO `json:"data,omitempty"`
}

// CommunityResponseWrapper 单个社区响应的文档包装
type CommunityResponseWrapper struct {
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	Data    *CommunityVO `json:"data,omitempty"`
}

// CommunityListResponseWrapper 社区列表响应的文档包装
type CommunityListResponseWrapper struct {
	Code    int            `json:"code"`
	Message string         `json:"message,omitempty"`
	Data    []*CommunityVO `json:"data,omitempty"`
}

// JoinRequestListResponseWrapper 入社申请列表响应的文档包装
type JoinRequestListResponseWrapper struct {
	Code    int              `json:"code"`
	Message string           `json:"message,omitempty"`
	Data    []*JoinRequestVO `json:"data,omitempty"`
}

// CommunityRequestListResponseWrapper 建社申请列表响应的文档包装
type CommunityRequestListResponseWrapper struct {
	Code    int                   `json:"code"`
	Message string                `json:"message,omitempty"`
	Data    []*CommunityRequestVO `json:"data,omitempty"`
}

// EmptyResponseWrapper 无数据响应的文档包装
type EmptyResponseWrapper struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}
