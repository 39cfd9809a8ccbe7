package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/myErrors"
)

// CommunityRequestRepository 定义了建社申请的持久化操作接口。
type CommunityRequestRepository interface {
	// CreateCommunityRequest 持久化一条建社申请，初始状态 pending。
	CreateCommunityRequest(ctx context.Context, request *entities.CommunityRequest) error

	// GetCommunityRequestByID 根据 ID 检索申请，并预加载申请人。
	GetCommunityRequestByID(ctx context.Context, id uint64) (*entities.CommunityRequest, error)

	// ListCommunityRequestsByStatus 按状态查询申请队列，按创建时间升序。
	ListCommunityRequestsByStatus(ctx context.Context, status enums.Status) ([]*entities.CommunityRequest, error)

	// UpdateCommunityRequestStatus 写入审批结论与理由。
	// - 条件更新，仅当申请仍为 pending 时生效；已有结论时返回 myErrors.ErrRequestAlreadyDecided。
	UpdateCommunityRequestStatus(ctx context.Context, db *gorm.DB, id uint64, status enums.Status, reason string) error
}

// communityRequestRepository 是 CommunityRequestRepository 接口针对 MySQL 的具体实现。
type communityRequestRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommunityRequestRepository 是 communityRequestRepository 的构造函数。
func NewCommunityRequestRepository(db *gorm.DB, logger *core.ZapLogger) CommunityRequestRepository {
	return &communityRequestRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCommunityRequest 实现建社申请的插入。
func (r *communityRequestRepository) CreateCommunityRequest(ctx context.Context, request *entities.CommunityRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		r.logger.Error("创建建社申请数据库操作失败",
			zap.Error(err),
			zap.String("userID", request.UserID),
			zap.String("name", request.Name),
		)
		return err
	}
	return nil
}

// GetCommunityRequestByID 实现按 ID 检索申请。
func (r *communityRequestRepository) GetCommunityRequestByID(ctx context.Context, id uint64) (*entities.CommunityRequest, error) {
	var request entities.CommunityRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询建社申请数据库操作失败", zap.Error(err), zap.Uint64("requestID", id))
		return nil, err
	}
	return &request, nil
}

// ListCommunityRequestsByStatus 实现申请队列查询。
func (r *communityRequestRepository) ListCommunityRequestsByStatus(ctx context.Context, status enums.Status) ([]*entities.CommunityRequest, error) {
	var requests []*entities.CommunityRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		r.logger.Error("查询建社申请队列数据库操作失败", zap.Error(err), zap.Int("status", int(status)))
		return nil, err
	}
	return requests, nil
}

// UpdateCommunityRequestStatus 实现审批结论的写入。
// - 接受外部事务对象，审批通过时与社区创建在同一事务内完成。
func (r *communityRequestRepository) UpdateCommunityRequestStatus(ctx context.Context, db *gorm.DB, id uint64, status enums.Status, reason string) error {
	result := db.WithContext(ctx).
		Model(&entities.CommunityRequest{}).
		Where("id = ? AND status = ?", id, enums.Pending).
		Updates(map[string]interface{}{
			"status": status,
			"reason": reason,
		})
	if result.Error != nil {
		r.logger.Error("更新建社申请状态数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("requestID", id),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		// 区分申请不存在与申请已有结论。
		var count int64
		if err := db.WithContext(ctx).
			Model(&entities.CommunityRequest{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return commonerrors.ErrRepoNotFound
		}
		return myErrors.ErrRequestAlreadyDecided
	}
	return nil
}
