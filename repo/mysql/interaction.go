package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// InteractionRepository 定义了帖子互动数据（评论、反应）的持久化操作接口。
// 互动写入对并发敏感，计数与状态切换都在数据库端原子完成。
type InteractionRepository interface {
	// AddComment 在一个事务内追加评论并递增帖子的评论计数。
	// - 计数使用 SQL 表达式递增，并发追加不会丢失计数。
	// - 帖子不存在时返回 commonerrors.ErrRepoNotFound。
	AddComment(ctx context.Context, comment *entities.Comment) error

	// ToggleReaction 切换用户对帖子的某类反应。
	// - 已存在同 (post, user, type) 的记录则删除（取消），否则插入（点上）。
	// - 删除与插入在同一事务内完成，配合唯一索引保证同一用户同一类型至多一条。
	// - 返回切换后的状态：true 表示本次为点上。
	ToggleReaction(ctx context.Context, reaction *entities.Reaction) (bool, error)

	// GetReactionsByPostID 返回帖子当前的全部反应记录。
	GetReactionsByPostID(ctx context.Context, postID uint64) ([]entities.Reaction, error)
}

// interactionRepository 是 InteractionRepository 接口针对 MySQL 的具体实现。
type interactionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewInteractionRepository 是 interactionRepository 的构造函数。
func NewInteractionRepository(db *gorm.DB, logger *core.ZapLogger) InteractionRepository {
	return &interactionRepository{
		db:     db,
		logger: logger,
	}
}

// AddComment 实现评论追加与计数递增的事务。
func (r *interactionRepository) AddComment(ctx context.Context, comment *entities.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先递增计数并校验帖子存在，避免给已删除的帖子挂评论。
		result := tx.Model(&entities.Post{}).
			Where("id = ? AND deleted_at IS NULL", comment.PostID).
			UpdateColumn("response_count", gorm.Expr("response_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}

		return tx.Create(comment).Error
	})
	if err != nil {
		if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			r.logger.Error("追加评论事务失败",
				zap.Error(err),
				zap.Uint64("postID", comment.PostID),
				zap.String("authorID", comment.AuthorID),
			)
		}
		return err
	}
	return nil
}

// ToggleReaction 实现反应的删除或插入切换。
func (r *interactionRepository) ToggleReaction(ctx context.Context, reaction *entities.Reaction) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 帖子存在性校验。
		var count int64
		if err := tx.Model(&entities.Post{}).
			Where("id = ? AND deleted_at IS NULL", reaction.PostID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return commonerrors.ErrRepoNotFound
		}

		// 命中已有记录则删除，视为取消反应。
		result := tx.Where("post_id = ? AND user_id = ? AND type = ?",
			reaction.PostID, reaction.UserID, reaction.Type).
			Delete(&entities.Reaction{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			added = false
			return nil
		}

		// 未命中则插入。唯一索引 uk_post_user_type 兜底并发下的重复插入。
		if err := tx.Create(reaction).Error; err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			r.logger.Error("切换反应事务失败",
				zap.Error(err),
				zap.Uint64("postID", reaction.PostID),
				zap.String("userID", reaction.UserID),
				zap.String("type", reaction.Type),
			)
		}
		return false, err
	}
	return added, nil
}

// GetReactionsByPostID 实现帖子反应集合的查询。
func (r *interactionRepository) GetReactionsByPostID(ctx context.Context, postID uint64) ([]entities.Reaction, error) {
	var reactions []entities.Reaction
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&reactions).Error
	if err != nil {
		r.logger.Error("查询帖子反应数据库操作失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, err
	}
	return reactions, nil
}
