// Package kafkaevents 定义了审核镜像在 Kafka 上传输的事件结构。
// 人工审核台消费 pending 主题，裁定结果写回 approved/rejected 主题。
package kafkaevents

import "time"

// PostReviewData 是待审核事件携带的帖子核心数据。
type PostReviewData struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Community   string `json:"community"`
	AIGenerated bool   `json:"aiGenerated"`
}

// PostPendingReviewEvent 在 AI 帖子进入待审核状态时发出。
type PostPendingReviewEvent struct {
	EventID   string         `json:"eventId"`
	Timestamp time.Time      `json:"timestamp"`
	Post      PostReviewData `json:"post"`
}

// PostReviewApprovedEvent 表示外部审核台通过了某个帖子。
type PostReviewApprovedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"postId"`
}

// PostReviewRejectedEvent 表示外部审核台驳回了某个帖子。
type PostReviewRejectedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"postId"`
	Reason    string    `json:"reason,omitempty"`
}
