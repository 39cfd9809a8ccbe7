package constant

// 服务标识常量
const (
	// ServiceName 服务名称，用于链路追踪与日志标识
	ServiceName = "community_service"
	// ServiceVersion 服务版本号
	ServiceVersion = "1.0.0"
)

// 定时任务 cron 表达式常量
const (
	// AIContentCronSpec 是 AI 内容生成任务的调度表达式。
	// 每天上午 9 点执行一次，为每个社区生成一篇待审核的 AI 帖子。
	AIContentCronSpec = "0 9 * * *"

	// ActivitySyncCronSpec 是社区日发帖量同步任务的调度表达式。
	// 每天 0 点执行，将 Redis 中累计的当日发帖计数刷入 MySQL 后清零。
	ActivitySyncCronSpec = "0 0 * * *"
)

// 事件中心相关常量
const (
	// EventBufferSize 是每个 SSE 订阅者通道的缓冲大小。
	// 通道满时事件对该订阅者直接丢弃 (尽力投递语义)，不阻塞发布方。
	EventBufferSize = 64
)

// AI 内容生成相关常量
const (
	// AIAuthorName 是调度器生成帖子时使用的作者展示名。
	// 调度器路径没有请求上下文，作者身份固定为 AI 代理。
	AIAuthorName = "AI Agent"

	// AIPromptTemplate 是内容生成提示词模板，%s 为社区名称。
	AIPromptTemplate = "Write a helpful health tip for the %s community in 200 words."

	// AITitleTemplate 是 AI 帖子标题模板，%s 为社区名称。
	AITitleTemplate = "%s Daily Health Tip"

	// AIPlaceholderTemplate 未配置生成服务密钥时使用的占位内容模板，%s 为提示词。
	AIPlaceholderTemplate = "AI placeholder content for prompt: %s"

	// AIFallbackTemplate 生成服务调用失败时使用的兜底内容模板，%s 为提示词。
	// 单个社区生成失败不会中断整轮任务，使用确定性兜底文本保证每个社区都产出一篇帖子。
	AIFallbackTemplate = "AI fallback content for prompt: %s"
)
