package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/events"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// ReviewService 定义了 AI 内容审核与发布的业务接口。
// 审核和发布是两个独立开关：裁定不改变发布状态，
// 发布也不检查裁定结果，这是沿用既有系统的策略。
type ReviewService interface {
	// Validate 写入审核裁定并记录裁定人。
	// - status 只接受 validated/rejected，其余值返回 myErrors.ErrInvalidValidationStatus。
	// - 不设状态前置条件，重复裁定以最后一次为准，每次成功都发事件。
	// - 成功后发布 post:validated {postId, status}。
	Validate(ctx context.Context, postID uint64, status enums.ValidationStatus, reviewerName string) (*vo.PostVO, error)

	// Publish 打开帖子的发布开关，对裁定结果不设前置条件。
	// - 成功后发布 post:published，携带完整帖子快照。
	Publish(ctx context.Context, postID uint64) (*vo.PostVO, error)

	// ListPending 返回待审核队列（aiGenerated 且 pending），按提交时间先进先审。
	ListPending(ctx context.Context) ([]*vo.PostVO, error)

	// ListUnpublished 返回已生成但尚未发布的 AI 帖子，供运营发布页使用。
	ListUnpublished(ctx context.Context) ([]*vo.PostVO, error)
}

// reviewService 是 ReviewService 接口的具体实现。
type reviewService struct {
	postRepo mysql.PostRepository
	hub      events.Broadcaster
	logger   *core.ZapLogger
}

// NewReviewService 是 reviewService 的构造函数。
func NewReviewService(postRepo mysql.PostRepository, hub events.Broadcaster, logger *core.ZapLogger) ReviewService {
	return &reviewService{
		postRepo: postRepo,
		hub:      hub,
		logger:   logger,
	}
}

// Validate 写入审核裁定。
func (s *reviewService) Validate(ctx context.Context, postID uint64, status enums.ValidationStatus, reviewerName string) (*vo.PostVO, error) {
	if !status.IsValidVerdict() {
		return nil, myErrors.ErrInvalidValidationStatus
	}

	if err := s.postRepo.UpdateValidationStatus(ctx, postID, status, reviewerName); err != nil {
		return nil, err
	}

	s.logger.Info("帖子审核裁定完成",
		zap.Uint64("postID", postID),
		zap.String("status", status.String()),
		zap.String("reviewer", reviewerName),
	)

	s.hub.Publish(events.New(events.PostValidated, events.PostValidatedPayload{
		PostID: postID,
		Status: status,
	}))

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return vo.NewPostVOFromEntity(post), nil
}

// Publish 打开发布开关。
func (s *reviewService) Publish(ctx context.Context, postID uint64) (*vo.PostVO, error) {
	if err := s.postRepo.SetPublished(ctx, postID, true); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	postVO := vo.NewPostVOFromEntity(post)

	s.logger.Info("帖子已发布", zap.Uint64("postID", postID))
	s.hub.Publish(events.New(events.PostPublished, postVO))

	return postVO, nil
}

// ListPending 返回待审核队列。
func (s *reviewService) ListPending(ctx context.Context) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.ListPendingAIPosts(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapPostsToPostVOs(posts), nil
}

// ListUnpublished 返回未发布的 AI 帖子。
func (s *reviewService) ListUnpublished(ctx context.Context) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.ListUnpublishedAIPosts(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapPostsToPostVOs(posts), nil
}
