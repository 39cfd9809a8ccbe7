package config

// ActivitySyncConfig 包含社区当日发帖计数同步任务相关的配置
type ActivitySyncConfig struct {
	// BatchSize 是将 Redis 中的发帖计数刷回 MySQL 时，单个 UPDATE 批次包含的社区数量。
	// 计数总量会按该值切分为若干小批次，每个小批次一次数据库操作完成。
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`

	// ConcurrencyLevel 是刷库时并发处理批次的 worker (goroutine) 数量。
	// 影响同时向数据库发起更新请求的并发连接数。
	ConcurrencyLevel int `mapstructure:"concurrencyLevel" json:"concurrencyLevel" yaml:"concurrencyLevel"`

	// ScanBatchSize 是使用 SCAN 命令遍历计数 Key 时传给 COUNT 参数的建议值。
	// Redis 不保证精确返回该数量，仅作为提示；避免一次性 KEYS 阻塞 Redis。
	ScanBatchSize int64 `mapstructure:"scanBatchSize" json:"scanBatchSize" yaml:"scanBatchSize"`
}
