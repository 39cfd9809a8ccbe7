package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/kafkaevents"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendPostPendingReviewEvent 发送帖子待审核事件到 Kafka
// - 意图: 将新创建的 AI 帖子镜像到外部审核台，裁定结果经 approved/rejected 主题写回
// - 输入: ctx context.Context 上下文, post *entities.Post 刚落库的帖子
// - 输出: error 错误信息
func (p *KafkaProducer) SendPostPendingReviewEvent(ctx context.Context, post *entities.Post) error {
	event := kafkaevents.PostPendingReviewEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post: kafkaevents.PostReviewData{
			ID:          post.ID,
			Title:       post.Title,
			Content:     post.Content,
			Community:   post.CommunityName,
			AIGenerated: post.AIGenerated,
		},
	}

	return p.SendEvent(ctx, p.topics.PostPendingReview, event)
}

// Close 关闭底层 Writer，进程退出前调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
