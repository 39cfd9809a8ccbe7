package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/myErrors"
)

// MembershipRepository 定义了入社申请与成员关系的持久化操作接口。
// 直接加入与审批通过最终都落到同一组成员关系原语上。
type MembershipRepository interface {
	// CreateJoinRequest 持久化一条入社申请。
	// - 同一用户对同一社区已有 pending 申请时返回 myErrors.ErrJoinRequestPending。
	CreateJoinRequest(ctx context.Context, request *entities.JoinRequest) error

	// GetJoinRequestByID 根据 ID 检索申请，并预加载用户与社区。
	GetJoinRequestByID(ctx context.Context, id uint64) (*entities.JoinRequest, error)

	// ListJoinRequestsByStatus 按状态查询申请队列，按创建时间升序。
	ListJoinRequestsByStatus(ctx context.Context, status enums.Status) ([]*entities.JoinRequest, error)

	// UpdateJoinRequestStatus 写入审批结论与理由。
	// - 条件更新，仅当申请仍为 pending 时生效；已有结论时返回 myErrors.ErrRequestAlreadyDecided。
	UpdateJoinRequestStatus(ctx context.Context, id uint64, status enums.Status, reason string) error

	// AddMember 建立成员关系并原子递增社区成员计数。
	// - 关系写入使用 ON CONFLICT DO NOTHING，重复加入是幂等空操作且不重复计数。
	// - 这是所有入社路径（直接加入、审批通过）共用的唯一原语。
	AddMember(ctx context.Context, userID string, communityID uint64) error

	// RemoveMember 解除成员关系并原子递减社区成员计数。
	// - 关系不存在时为幂等空操作，计数不变。
	RemoveMember(ctx context.Context, userID string, communityID uint64) error

	// IsMember 判断用户是否已是社区成员。
	IsMember(ctx context.Context, userID string, communityID uint64) (bool, error)

	// ListMemberCommunityIDs 返回用户加入的全部社区 ID。
	ListMemberCommunityIDs(ctx context.Context, userID string) ([]uint64, error)
}

// membershipRepository 是 MembershipRepository 接口针对 MySQL 的具体实现。
type membershipRepository struct {
	db            *gorm.DB
	communityRepo CommunityRepository
	logger        *core.ZapLogger
}

// NewMembershipRepository 是 membershipRepository 的构造函数。
func NewMembershipRepository(db *gorm.DB, communityRepo CommunityRepository, logger *core.ZapLogger) MembershipRepository {
	return &membershipRepository{
		db:            db,
		communityRepo: communityRepo,
		logger:        logger,
	}
}

// CreateJoinRequest 实现入社申请的插入，带重复 pending 检查。
func (r *membershipRepository) CreateJoinRequest(ctx context.Context, request *entities.JoinRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&entities.JoinRequest{}).
			Where("user_id = ? AND community_id = ? AND status = ?",
				request.UserID, request.CommunityID, enums.Pending).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return myErrors.ErrJoinRequestPending
		}

		if err := tx.Create(request).Error; err != nil {
			r.logger.Error("创建入社申请数据库操作失败",
				zap.Error(err),
				zap.String("userID", request.UserID),
				zap.Uint64("communityID", request.CommunityID),
			)
			return err
		}
		return nil
	})
}

// GetJoinRequestByID 实现按 ID 检索申请。
func (r *membershipRepository) GetJoinRequestByID(ctx context.Context, id uint64) (*entities.JoinRequest, error) {
	var request entities.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Community").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询入社申请数据库操作失败", zap.Error(err), zap.Uint64("requestID", id))
		return nil, err
	}
	return &request, nil
}

// ListJoinRequestsByStatus 实现申请队列查询。
func (r *membershipRepository) ListJoinRequestsByStatus(ctx context.Context, status enums.Status) ([]*entities.JoinRequest, error) {
	var requests []*entities.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Community").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		r.logger.Error("查询入社申请队列数据库操作失败", zap.Error(err), zap.Int("status", int(status)))
		return nil, err
	}
	return requests, nil
}

// UpdateJoinRequestStatus 实现审批结论的写入。
func (r *membershipRepository) UpdateJoinRequestStatus(ctx context.Context, id uint64, status enums.Status, reason string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.JoinRequest{}).
		Where("id = ? AND status = ?", id, enums.Pending).
		Updates(map[string]interface{}{
			"status": status,
			"reason": reason,
		})
	if result.Error != nil {
		r.logger.Error("更新入社申请状态数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("requestID", id),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		// 区分申请不存在与申请已有结论。
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entities.JoinRequest{}).
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

// AddMember 实现成员关系建立与计数递增的事务。
func (r *membershipRepository) AddMember(ctx context.Context, userID string, communityID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		relation := entities.UserCommunity{
			UserID:      userID,
			CommunityID: communityID,
		}
		// 复合主键冲突时跳过插入，重复加入不产生第二条关系。
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&relation)
		if result.Error != nil {
			r.logger.Error("建立成员关系数据库操作失败",
				zap.Error(result.Error),
				zap.String("userID", userID),
				zap.Uint64("communityID", communityID),
			)
			return result.Error
		}
		// 只有真正新建了关系才递增计数，保证幂等。
		if result.RowsAffected == 0 {
			return nil
		}
		return r.communityRepo.IncrementMemberCount(ctx, tx, communityID, 1)
	})
}

// RemoveMember 实现成员关系解除与计数递减的事务。
func (r *membershipRepository) RemoveMember(ctx context.Context, userID string, communityID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND community_id = ?", userID, communityID).
			Delete(&entities.UserCommunity{})
		if result.Error != nil {
			r.logger.Error("解除成员关系数据库操作失败",
				zap.Error(result.Error),
				zap.String("userID", userID),
				zap.Uint64("communityID", communityID),
			)
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return r.communityRepo.IncrementMemberCount(ctx, tx, communityID, -1)
	})
}

// IsMember 实现成员关系判断。
func (r *membershipRepository) IsMember(ctx context.Context, userID string, communityID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.UserCommunity{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMemberCommunityIDs 实现用户已加入社区的查询。
func (r *membershipRepository) ListMemberCommunityIDs(ctx context.Context, userID string) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.UserCommunity{}).
		Where("user_id = ?", userID).
		Pluck("community_id", &ids).Error
	if err != nil {
		r.logger.Error("查询用户已加入社区数据库操作失败", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}
	return ids, nil
}
