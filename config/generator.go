package config

// GeneratorConfig 外部内容生成服务（OpenAI 兼容接口）的配置。
// 调度器每天为每个社区请求一篇草稿；单次请求、不重试，
// 失败由调用方以确定性兜底文本恢复，永远不会让整轮任务中断。
type GeneratorConfig struct {
	// BaseURL 服务地址，默认 https://api.openai.com
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`

	// APIKey 为空时不发起外部调用，直接使用占位内容
	APIKey string `mapstructure:"apiKey" json:"apiKey" yaml:"apiKey"`

	// Model 使用的模型名称，默认 gpt-4o-mini
	Model string `mapstructure:"model" json:"model" yaml:"model"`

	// MaxTokens 单次生成的最大 token 数，默认 400
	MaxTokens int `mapstructure:"maxTokens" json:"maxTokens" yaml:"maxTokens"`

	// TimeoutSeconds 单次生成调用的硬超时（秒），默认 30。
	// 源系统没有调用侧超时，这里补上以约束调度器单轮运行时长。
	TimeoutSeconds int `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"`
}
