package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

// Topics AI 帖子审核管道使用的主题。
// 进入待审核队列的 AI 帖子会镜像到 PostPendingReview 主题，
// 外部审核服务的裁定通过 Approved/Rejected 主题回流，与人工审核走同一条写路径。
type Topics struct {
	PostPendingReview  string `mapstructure:"postPendingReview" yaml:"postPendingReview"`   // 提交审核主题
	PostReviewApproved string `mapstructure:"postReviewApproved" yaml:"postReviewApproved"` // 审核通过主题
	PostReviewRejected string `mapstructure:"postReviewRejected" yaml:"postReviewRejected"` // 审核拒绝主题
}
