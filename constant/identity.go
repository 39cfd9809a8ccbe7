package constant

// 身份上下文 Key 常量
// 网关在转发请求前已完成凭证校验，并将已验证的用户三元组透传到以下请求头。
// 本服务完全信任这组请求头，用于 authorId/authorName 落库以及角色门禁。
const (
	// UserIDHeader 已验证的用户 ID 请求头 (char(36))
	UserIDHeader = "X-User-ID"
	// UserNameHeader 已验证的用户展示名请求头
	UserNameHeader = "X-User-Name"
	// UserRoleHeader 已验证的用户角色请求头
	UserRoleHeader = "X-User-Role"

	// IdentityContextKey 是解析后的身份信息在 gin.Context 中的存放键。
	IdentityContextKey = "community_service.identity"
)
