package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/community_service/models/entities"
)

// UserRepository 定义了用户影子记录的持久化操作接口。
// 用户主数据在身份服务，这里只维护申请与成员关系需要引用的本地影子。
type UserRepository interface {
	// UpsertUser 按网关透传的身份信息插入或刷新影子记录。
	UpsertUser(ctx context.Context, user *entities.User) error

	// GetUserByID 根据 ID 检索影子记录。
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
}

// userRepository 是 UserRepository 接口针对 MySQL 的具体实现。
type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser 实现影子记录的插入或刷新。
// - 主键冲突时覆盖 name/role/avatar，保持影子与网关最新透传一致。
func (r *userRepository) UpsertUser(ctx context.Context, user *entities.User) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "role", "avatar", "updated_at"}),
		}).
		Create(user).Error
	if err != nil {
		r.logger.Error("写入用户影子记录数据库操作失败",
			zap.Error(err),
			zap.String("userID", user.ID),
		)
		return err
	}
	return nil
}

// GetUserByID 实现按 ID 检索影子记录。
func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询用户影子记录数据库操作失败", zap.Error(err), zap.String("userID", id))
		return nil, err
	}
	return &user, nil
}
