package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// CommunityRepository 定义了社区数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type CommunityRepository interface {
	// CreateCommunity 持久化一个新的社区记录。
	// - 名称不做唯一性约束，重名社区允许共存。
	CreateCommunity(ctx context.Context, db *gorm.DB, community *entities.Community) error

	// GetCommunityByID 根据 ID 检索社区。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetCommunityByID(ctx context.Context, id uint64) (*entities.Community, error)

	// GetCommunityByName 根据名称检索社区，存在重名时返回最早创建的一条。
	GetCommunityByName(ctx context.Context, name string) (*entities.Community, error)

	// ListCommunities 返回全部社区的快照，按创建时间升序。
	ListCommunities(ctx context.Context) ([]*entities.Community, error)

	// UpdateCommunity 更新社区资料，传入 nil 的字段不会被修改。
	UpdateCommunity(ctx context.Context, id uint64, name *string, description *string, category *string, color *string) error

	// DeleteCommunity 对指定社区执行软删除。
	DeleteCommunity(ctx context.Context, id uint64) error

	// IncrementMemberCount 以原子 SQL 表达式调整成员计数。
	// - delta 为负时带 member_count > 0 条件，保证计数不会降到负数。
	IncrementMemberCount(ctx context.Context, db *gorm.DB, id uint64, delta int64) error

	// SetDailyPosts 回写当日发帖计数，由活跃度同步任务调用。
	SetDailyPosts(ctx context.Context, id uint64, count int64) error

	// TouchRecentActivity 更新社区的最近活跃描述。
	TouchRecentActivity(ctx context.Context, id uint64, activity string) error
}

// communityRepository 是 CommunityRepository 接口针对 MySQL 的具体实现。
type communityRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommunityRepository 是 communityRepository 的构造函数。
func NewCommunityRepository(db *gorm.DB, logger *core.ZapLogger) CommunityRepository {
	return &communityRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCommunity 实现社区的数据库插入操作。
func (r *communityRepository) CreateCommunity(ctx context.Context, db *gorm.DB, community *entities.Community) error {
	if err := db.WithContext(ctx).Create(community).Error; err != nil {
		r.logger.Error("创建社区数据库操作失败",
			zap.Error(err),
			zap.String("name", community.Name),
		)
		return err
	}
	return nil
}

// GetCommunityByID 实现按 ID 检索社区。
func (r *communityRepository) GetCommunityByID(ctx context.Context, id uint64) (*entities.Community, error) {
	var community entities.Community
	err := r.db.WithContext(ctx).First(&community, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询社区数据库操作失败", zap.Error(err), zap.Uint64("communityID", id))
		return nil, err
	}
	return &community, nil
}

// GetCommunityByName 实现按名称检索社区。
func (r *communityRepository) GetCommunityByName(ctx context.Context, name string) (*entities.Community, error) {
	var community entities.Community
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id ASC").
		First(&community).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按名称查询社区数据库操作失败", zap.Error(err), zap.String("name", name))
		return nil, err
	}
	return &community, nil
}

// ListCommunities 实现全量社区快照查询。
// - 社区数量级很小（原型期几十个），全量返回即可，不做分页。
func (r *communityRepository) ListCommunities(ctx context.Context) ([]*entities.Community, error) {
	var communities []*entities.Community
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&communities).Error
	if err != nil {
		r.logger.Error("查询社区列表数据库操作失败", zap.Error(err))
		return nil, err
	}
	return communities, nil
}

// UpdateCommunity 实现社区资料的部分更新，nil 字段跳过。
func (r *communityRepository) UpdateCommunity(ctx context.Context, id uint64, name *string, description *string, category *string, color *string) error {
	updateMap := make(map[string]interface{})

	if name != nil {
		updateMap["name"] = *name
	}
	if description != nil {
		updateMap["description"] = *description
	}
	if category != nil {
		updateMap["category"] = *category
	}
	if color != nil {
		updateMap["color"] = *color
	}

	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新社区 (所有可选参数均为nil)",
			zap.Uint64("communityID", id),
		)
		return nil
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Community{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新社区数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("communityID", id),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteCommunity 实现社区的软删除。
func (r *communityRepository) DeleteCommunity(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Community{}, id)
	if result.Error != nil {
		r.logger.Error("删除社区数据库操作失败", zap.Error(result.Error), zap.Uint64("communityID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// IncrementMemberCount 实现成员计数的原子增减。
// - 通过 SQL 表达式在数据库端完成读改写，并发调用不会彼此覆盖。
func (r *communityRepository) IncrementMemberCount(ctx context.Context, db *gorm.DB, id uint64, delta int64) error {
	query := db.WithContext(ctx).
		Model(&entities.Community{}).
		Where("id = ?", id)

	// 递减时附加下限条件，计数已为 0 则本次递减不生效。
	if delta < 0 {
		query = query.Where("member_count > 0")
	}

	result := query.UpdateColumn("member_count", gorm.Expr("member_count + ?", delta))
	if result.Error != nil {
		r.logger.Error("更新社区成员计数失败",
			zap.Error(result.Error),
			zap.Uint64("communityID", id),
			zap.Int64("delta", delta),
		)
		return result.Error
	}
	// 递减被下限条件拦截属于预期情况，不视为错误。
	if result.RowsAffected == 0 && delta > 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// SetDailyPosts 实现当日发帖计数的回写。
func (r *communityRepository) SetDailyPosts(ctx context.Context, id uint64, count int64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Community{}).
		Where("id = ?", id).
		UpdateColumn("daily_posts", count)
	if result.Error != nil {
		r.logger.Error("回写社区当日发帖计数失败",
			zap.Error(result.Error),
			zap.Uint64("communityID", id),
			zap.Int64("count", count),
		)
		return result.Error
	}
	return nil
}

// TouchRecentActivity 实现最近活跃描述的更新。
func (r *communityRepository) TouchRecentActivity(ctx context.Context, id uint64, activity string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Community{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"recent_activity": activity,
			"updated_at":      time.Now(),
		}).Error
}
