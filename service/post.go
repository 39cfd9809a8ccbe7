package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/events"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// PostService 定义了帖子生命周期的核心业务接口。
// 状态机规则集中在这里：人类帖子创建即 validated+published，
// AI 帖子创建即 pending+unpublished，审核与发布是两个互相独立的开关。
type PostService interface {
	// CreatePost 处理用户发帖。
	// - req.AIGenerated 为 true 时走 AI 路径（pending / 未发布），并镜像到审核主题。
	// - 成功后在事件通道发布 post:created 或 post:ai_created，携带完整帖子快照。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest, authorID string, authorName string) (*vo.PostVO, error)

	// CreateAIPost 以 AI 身份直接注入一条待审核帖子。
	// - 定时任务与管理员注入共用这条路径，作者名固定为 AI 署名。
	CreateAIPost(ctx context.Context, req *dto.CreateAIPostRequest) (*vo.PostVO, error)

	// GetPostByID 获取单个帖子的完整快照（含评论与反应）。
	GetPostByID(ctx context.Context, postID uint64) (*vo.PostVO, error)

	// ListPosts 获取公开帖子列表，仅含已发布帖子，按创建时间降序。
	ListPosts(ctx context.Context, query *dto.ListPostsQuery) ([]*vo.PostVO, error)

	// EditPost 编辑帖子标题或正文，记录编辑人，不触碰状态开关。
	EditPost(ctx context.Context, postID uint64, req *dto.EditPostRequest, editorName string) (*vo.PostVO, error)

	// AddComment 追加一条评论并让响应计数恰好加一。
	// - 成功后发布 post:comment {postId, comment}。
	AddComment(ctx context.Context, postID uint64, req *dto.CommentRequest, authorID string, authorName string) (*vo.CommentVO, error)

	// ToggleReaction 切换 (user, type) 反应，同一对调用两次回到初始状态。
	// - 成功后发布 post:react {postId, reactions}，携带切换后的完整反应集合。
	ToggleReaction(ctx context.Context, postID uint64, req *dto.ReactRequest, userID string) ([]vo.ReactionVO, error)
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db              *gorm.DB
	postRepo        mysql.PostRepository
	communityRepo   mysql.CommunityRepository
	interactionRepo mysql.InteractionRepository
	activityRepo    redis.CommunityActivityRepository
	hub             events.Broadcaster
	kafkaSvc        *producer.KafkaProducer
	logger          *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
// - kafkaSvc 允许为 nil，此时 AI 帖子不镜像到外部审核台，只进站内队列。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	communityRepo mysql.CommunityRepository,
	interactionRepo mysql.InteractionRepository,
	activityRepo redis.CommunityActivityRepository,
	hub events.Broadcaster,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:              db,
		postRepo:        postRepo,
		communityRepo:   communityRepo,
		interactionRepo: interactionRepo,
		activityRepo:    activityRepo,
		hub:             hub,
		kafkaSvc:        kafkaSvc,
		logger:          logger,
	}
}

// createPost 是人类与 AI 两条创建路径共用的落库流程。
// 状态开关在这里一次性定型，落库后不再有"创建时"语义的写入。
func (s *postService) createPost(ctx context.Context, post *entities.Post) (*vo.PostVO, error) {
	if post.AIGenerated {
		post.ValidationStatus = enums.ValidationPending
		post.Published = false
	} else {
		post.ValidationStatus = enums.Validated
		post.Published = true
	}

	if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
		return nil, fmt.Errorf("创建帖子失败: %w", err)
	}

	// 活跃度计数与最近活跃描述是尽力而为的旁路写入，失败不回滚发帖。
	s.bumpCommunityActivity(post.CommunityName)

	postVO := vo.NewPostVOFromEntity(post)

	if post.AIGenerated {
		s.hub.Publish(events.New(events.PostAICreated, postVO))
		s.mirrorToReview(post)
	} else {
		s.hub.Publish(events.New(events.PostCreated, postVO))
	}

	return postVO, nil
}

// bumpCommunityActivity 异步更新社区的活跃度信号。
func (s *postService) bumpCommunityActivity(communityName string) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		community, err := s.communityRepo.GetCommunityByName(bgCtx, communityName)
		if err != nil {
			// 社区名是非外键的松散引用，找不到对应社区不算失败。
			s.logger.Warn("帖子所属社区未登记，跳过活跃度更新", zap.String("community", communityName), zap.Error(err))
			return
		}

		if err := s.activityRepo.IncrDailyPosts(bgCtx, community.ID); err != nil {
			s.logger.Warn("递增社区当日发帖计数失败", zap.Uint64("communityID", community.ID), zap.Error(err))
		}
		if err := s.communityRepo.TouchRecentActivity(bgCtx, community.ID, "新帖子发布"); err != nil {
			s.logger.Warn("更新社区最近活跃描述失败", zap.Uint64("communityID", community.ID), zap.Error(err))
		}
	}()
}

// mirrorToReview 异步把 AI 帖子镜像到外部审核台。
func (s *postService) mirrorToReview(post *entities.Post) {
	if s.kafkaSvc == nil {
		return
	}
	postCopy := *post
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.kafkaSvc.SendPostPendingReviewEvent(bgCtx, &postCopy); err != nil {
			s.logger.Error("镜像待审核帖子到 Kafka 失败", zap.Uint64("postID", postCopy.ID), zap.Error(err))
		}
	}()
}

// CreatePost 处理用户发帖。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest, authorID string, authorName string) (*vo.PostVO, error) {
	post := &entities.Post{
		Title:         req.Title,
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		CommunityName: req.Community,
		AuthorID:      authorID,
		AuthorName:    authorName,
		AIGenerated:   req.AIGenerated,
	}
	return s.createPost(ctx, post)
}

// CreateAIPost 以 AI 署名注入待审核帖子。
func (s *postService) CreateAIPost(ctx context.Context, req *dto.CreateAIPostRequest) (*vo.PostVO, error) {
	post := &entities.Post{
		Title:         req.Title,
		Content:       req.Content,
		CommunityName: req.Community,
		AuthorName:    constant.AIAuthorName,
		AIGenerated:   true,
	}
	return s.createPost(ctx, post)
}

// GetPostByID 获取帖子详情。
func (s *postService) GetPostByID(ctx context.Context, postID uint64) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return vo.NewPostVOFromEntity(post), nil
}

// ListPosts 获取公开帖子列表。
func (s *postService) ListPosts(ctx context.Context, query *dto.ListPostsQuery) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.ListPosts(ctx, query.Community, query.Limit)
	if err != nil {
		return nil, err
	}
	return vo.MapPostsToPostVOs(posts), nil
}

// EditPost 编辑帖子内容。
func (s *postService) EditPost(ctx context.Context, postID uint64, req *dto.EditPostRequest, editorName string) (*vo.PostVO, error) {
	if err := s.postRepo.UpdatePostContent(ctx, postID, req.Title, req.Content, editorName); err != nil {
		return nil, err
	}
	return s.GetPostByID(ctx, postID)
}

// AddComment 追加评论。
func (s *postService) AddComment(ctx context.Context, postID uint64, req *dto.CommentRequest, authorID string, authorName string) (*vo.CommentVO, error) {
	comment := &entities.Comment{
		PostID:     postID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    req.Content,
	}
	if err := s.interactionRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	commentVO := vo.NewCommentVO(comment)
	s.hub.Publish(events.New(events.PostComment, events.PostCommentPayload{
		PostID:  postID,
		Comment: commentVO,
	}))

	return &commentVO, nil
}

// ToggleReaction 切换反应并广播切换后的反应集合。
func (s *postService) ToggleReaction(ctx context.Context, postID uint64, req *dto.ReactRequest, userID string) ([]vo.ReactionVO, error) {
	reaction := &entities.Reaction{
		PostID: postID,
		UserID: userID,
		Type:   req.Type,
	}
	added, err := s.interactionRepo.ToggleReaction(ctx, reaction)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("反应切换完成",
		zap.Uint64("postID", postID),
		zap.String("userID", userID),
		zap.String("type", req.Type),
		zap.Bool("added", added),
	)

	reactions, err := s.interactionRepo.GetReactionsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	reactionVOs := vo.NewReactionVOs(reactions)

	s.hub.Publish(events.New(events.PostReact, events.PostReactPayload{
		PostID:    postID,
		Reactions: reactionVOs,
	}))

	return reactionVOs, nil
}
