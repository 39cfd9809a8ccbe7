package constant

// Redis Key 相关常量 (导出)
const (
	// CommunityDailyPostsPrefix 是社区当日发帖计数器的 Key 前缀。
	// 每个社区对应一个 String 类型的 Key，帖子创建成功后原子自增。
	// 示例 Key: "community_daily_posts:123" (其中 123 是 communityID)
	// Redis 类型: String
	// 示例值: "17" (表示社区 123 今日新增 17 篇帖子)
	CommunityDailyPostsPrefix = "community_daily_posts:"
)
