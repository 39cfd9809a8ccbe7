package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/kafkaevents"
	"github.com/Xushengqwer/community_service/service"
)

// todo  未配置死信队列

// 外部审核台裁定写入 editedBy 时使用的署名。
const externalReviewerName = "External Moderation"

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// --- ApprovedReviewHandler ---

// ApprovedReviewHandler 消费外部审核台的通过裁定，写回本地帖子状态。
// 与站内人工审核共用 ReviewService.Validate 这一条写入路径。
type ApprovedReviewHandler struct {
	logger        *core.ZapLogger
	reviewService service.ReviewService
}

func NewApprovedReviewHandler(logger *core.ZapLogger, reviewService service.ReviewService) *ApprovedReviewHandler {
	return &ApprovedReviewHandler{
		logger:        logger,
		reviewService: reviewService,
	}
}

func (h *ApprovedReviewHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("ApprovedReviewHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event kafkaevents.PostReviewApprovedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("ApprovedReviewHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("ApprovedReviewHandler: 成功解析审核通过消息",
		zap.String("event_id", event.EventID),
		zap.Uint64("post_id", event.PostID))

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := h.reviewService.Validate(updateCtx, event.PostID, enums.Validated, externalReviewerName)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("ApprovedReviewHandler: 尝试更新不存在或已删除的帖子状态", zap.Uint64("post_id", event.PostID))
			return nil // 不再重试
		}
		h.logger.Error("ApprovedReviewHandler: 更新帖子审核状态失败", zap.Error(err), zap.Uint64("post_id", event.PostID))
		return fmt.Errorf("ApprovedReviewHandler: 调用 Validate 失败: %w", err)
	}

	h.logger.Info("ApprovedReviewHandler: 成功更新帖子状态为已通过", zap.Uint64("post_id", event.PostID))
	return nil
}

// --- RejectedReviewHandler ---

// RejectedReviewHandler 消费外部审核台的驳回裁定。
type RejectedReviewHandler struct {
	logger        *core.ZapLogger
	reviewService service.ReviewService
}

func NewRejectedReviewHandler(logger *core.ZapLogger, reviewService service.ReviewService) *RejectedReviewHandler {
	return &RejectedReviewHandler{
		logger:        logger,
		reviewService: reviewService,
	}
}

func (h *RejectedReviewHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("RejectedReviewHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event kafkaevents.PostReviewRejectedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("RejectedReviewHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("RejectedReviewHandler: 成功解析审核驳回消息",
		zap.String("event_id", event.EventID),
		zap.Uint64("post_id", event.PostID),
		zap.String("reason", event.Reason))

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := h.reviewService.Validate(updateCtx, event.PostID, enums.ValidationRejected, externalReviewerName)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("RejectedReviewHandler: 尝试更新不存在或已删除的帖子状态", zap.Uint64("post_id", event.PostID))
			return nil // 不再重试
		}
		h.logger.Error("RejectedReviewHandler: 更新帖子审核状态失败",
			zap.Error(err),
			zap.Uint64("post_id", event.PostID))
		return fmt.Errorf("RejectedReviewHandler: 调用 Validate 失败: %w", err)
	}

	h.logger.Info("RejectedReviewHandler: 成功更新帖子状态为已驳回", zap.Uint64("post_id", event.PostID))
	return nil
}
