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
	"github.com/Xushengqwer/community_service/models/enums"
)

// 公开列表单次返回的最大条数，超出部分按时间截断。
const defaultPostListLimit = 50

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - 生命周期起点，validation_status 与 published 由服务层按来源预先填好。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据 ID 检索帖子，并预加载评论与反应。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// ListPosts 查询公开帖子列表，按创建时间降序。
	// - 只返回 published = true 的帖子，发布开关即列表可见性开关。
	// - community 非空时按社区名称过滤。
	// - limit 无效时回退到 defaultPostListLimit。
	ListPosts(ctx context.Context, community string, limit int) ([]*entities.Post, error)

	// ListPendingAIPosts 查询待审核的 AI 帖子队列，按创建时间升序（先进先审）。
	ListPendingAIPosts(ctx context.Context) ([]*entities.Post, error)

	// ListUnpublishedAIPosts 查询已生成但尚未发布的 AI 帖子。
	ListUnpublishedAIPosts(ctx context.Context) ([]*entities.Post, error)

	// UpdatePostContent 更新帖子的标题与正文，传入 nil 的字段不修改。
	// - editedBy 记录最后一次编辑人的名称。
	UpdatePostContent(ctx context.Context, postID uint64, title *string, content *string, editedBy string) error

	// UpdateValidationStatus 写入审核裁定并记录裁定人。
	// - 不设状态前置条件，重复裁定以后写为准。
	// - 帖子不存在时返回 commonerrors.ErrRepoNotFound。
	UpdateValidationStatus(ctx context.Context, postID uint64, status enums.ValidationStatus, editedBy string) error

	// SetPublished 切换帖子的发布开关。
	SetPublished(ctx context.Context, postID uint64, published bool) error

	// DeletePost 对指定帖子执行软删除。
	DeletePost(ctx context.Context, id uint64) error
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现帖子的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		r.logger.Error("创建帖子数据库操作失败",
			zap.Error(err),
			zap.String("title", post.Title),
			zap.String("community", post.CommunityName),
		)
		return err
	}
	return nil
}

// GetPostByID 实现按 ID 检索帖子详情。
// - 评论按创建时间升序预加载，反应不保证顺序。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Reactions").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询帖子数据库操作失败", zap.Error(err), zap.Uint64("postID", id))
		return nil, err
	}
	return &post, nil
}

// ListPosts 实现公开帖子列表查询。
func (r *postRepository) ListPosts(ctx context.Context, community string, limit int) ([]*entities.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultPostListLimit
	}

	query := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Reactions").
		Where("published = ?", true).
		Order("created_at DESC").
		Limit(limit)

	if community != "" {
		query = query.Where("community_name = ?", community)
	}

	var posts []*entities.Post
	if err := query.Find(&posts).Error; err != nil {
		r.logger.Error("查询帖子列表数据库操作失败",
			zap.Error(err),
			zap.String("community", community),
		)
		return nil, err
	}
	return posts, nil
}

// ListPendingAIPosts 实现待审核队列查询。
func (r *postRepository) ListPendingAIPosts(ctx context.Context) ([]*entities.Post, error) {
	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Where("ai_generated = ? AND validation_status = ?", true, enums.ValidationPending).
		Order("created_at ASC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("查询待审核 AI 帖子数据库操作失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

// ListUnpublishedAIPosts 实现未发布 AI 帖子查询。
func (r *postRepository) ListUnpublishedAIPosts(ctx context.Context) ([]*entities.Post, error) {
	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Where("ai_generated = ? AND published = ?", true, false).
		Order("created_at ASC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("查询未发布 AI 帖子数据库操作失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

// UpdatePostContent 实现标题与正文的部分更新。
func (r *postRepository) UpdatePostContent(ctx context.Context, postID uint64, title *string, content *string, editedBy string) error {
	updateMap := make(map[string]interface{})

	if title != nil {
		updateMap["title"] = *title
	}
	if content != nil {
		updateMap["content"] = *content
	}

	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新帖子 (所有可选参数均为nil)",
			zap.Uint64("postID", postID),
		)
		return nil
	}

	updateMap["edited_by"] = editedBy
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ? AND deleted_at IS NULL", postID).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新帖子内容数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// UpdateValidationStatus 实现审核裁定的写入。
// 不校验当前状态，重复裁定直接覆盖，以最后一次写入为准。
func (r *postRepository) UpdateValidationStatus(ctx context.Context, postID uint64, status enums.ValidationStatus, editedBy string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ? AND deleted_at IS NULL", postID).
		Updates(map[string]interface{}{
			"validation_status": status,
			"edited_by":         editedBy,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新帖子审核状态数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
			zap.Int("status", int(status)),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// SetPublished 实现发布开关的写入。
func (r *postRepository) SetPublished(ctx context.Context, postID uint64, published bool) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ? AND deleted_at IS NULL", postID).
		Updates(map[string]interface{}{
			"published":  published,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新帖子发布状态数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
			zap.Bool("published", published),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeletePost 实现帖子的软删除。
func (r *postRepository) DeletePost(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		r.logger.Error("删除帖子数据库操作失败", zap.Error(result.Error), zap.Uint64("postID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
