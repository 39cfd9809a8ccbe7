package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/middleware"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// CommunityService 定义了社区资料与建社申请的业务接口。
// 社区有两条诞生路径：管理员直接创建，或普通用户的建社申请被批准。
type CommunityService interface {
	// CreateCommunity 管理员直接创建社区。
	CreateCommunity(ctx context.Context, req *dto.CreateCommunityRequest) (*vo.CommunityVO, error)

	// GetCommunityByID 获取社区详情。
	GetCommunityByID(ctx context.Context, id uint64) (*vo.CommunityVO, error)

	// ListCommunities 获取全部社区列表。
	ListCommunities(ctx context.Context) ([]*vo.CommunityVO, error)

	// UpdateCommunity 更新社区资料，nil 字段不修改。
	UpdateCommunity(ctx context.Context, id uint64, req *dto.UpdateCommunityRequest) (*vo.CommunityVO, error)

	// DeleteCommunity 删除社区。关联的帖子与成员关系不做级联清理。
	DeleteCommunity(ctx context.Context, id uint64) error

	// RequestCommunity 普通用户提交建社申请。
	RequestCommunity(ctx context.Context, identity *middleware.Identity, req *dto.RequestCommunityRequest) (*vo.CommunityRequestVO, error)

	// ApproveCommunityRequest 批准建社申请，按申请内容创建社区。
	// - 不检查重名，同名社区可以并存（沿用既有行为）。
	ApproveCommunityRequest(ctx context.Context, requestID uint64) (*vo.CommunityRequestVO, error)

	// RejectCommunityRequest 驳回建社申请并记录理由。
	RejectCommunityRequest(ctx context.Context, requestID uint64, reason string) (*vo.CommunityRequestVO, error)

	// ListCommunityRequests 按状态查询建社申请队列。
	ListCommunityRequests(ctx context.Context, status enums.Status) ([]*vo.CommunityRequestVO, error)
}

// communityService 是 CommunityService 接口的具体实现。
type communityService struct {
	db            *gorm.DB
	communityRepo mysql.CommunityRepository
	requestRepo   mysql.CommunityRequestRepository
	userRepo      mysql.UserRepository
	logger        *core.ZapLogger
}

// NewCommunityService 是 communityService 的构造函数。
func NewCommunityService(
	db *gorm.DB,
	communityRepo mysql.CommunityRepository,
	requestRepo mysql.CommunityRequestRepository,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) CommunityService {
	return &communityService{
		db:            db,
		communityRepo: communityRepo,
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// CreateCommunity 管理员直接创建社区。
func (s *communityService) CreateCommunity(ctx context.Context, req *dto.CreateCommunityRequest) (*vo.CommunityVO, error) {
	community := &entities.Community{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Color:       req.Color,
	}
	if err := s.communityRepo.CreateCommunity(ctx, s.db, community); err != nil {
		return nil, fmt.Errorf("创建社区失败: %w", err)
	}

	s.logger.Info("社区已创建", zap.Uint64("communityID", community.ID), zap.String("name", community.Name))
	return vo.NewCommunityVOFromEntity(community), nil
}

// GetCommunityByID 获取社区详情。
func (s *communityService) GetCommunityByID(ctx context.Context, id uint64) (*vo.CommunityVO, error) {
	community, err := s.communityRepo.GetCommunityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewCommunityVOFromEntity(community), nil
}

// ListCommunities 获取全部社区列表。
func (s *communityService) ListCommunities(ctx context.Context) ([]*vo.CommunityVO, error) {
	communities, err := s.communityRepo.ListCommunities(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapCommunitiesToVOs(communities), nil
}

// UpdateCommunity 更新社区资料。
func (s *communityService) UpdateCommunity(ctx context.Context, id uint64, req *dto.UpdateCommunityRequest) (*vo.CommunityVO, error) {
	if err := s.communityRepo.UpdateCommunity(ctx, id, req.Name, req.Description, req.Category, req.Color); err != nil {
		return nil, err
	}
	return s.GetCommunityByID(ctx, id)
}

// DeleteCommunity 删除社区。
func (s *communityService) DeleteCommunity(ctx context.Context, id uint64) error {
	if err := s.communityRepo.DeleteCommunity(ctx, id); err != nil {
		return err
	}
	s.logger.Info("社区已删除", zap.Uint64("communityID", id))
	return nil
}

// RequestCommunity 提交建社申请。
func (s *communityService) RequestCommunity(ctx context.Context, identity *middleware.Identity, req *dto.RequestCommunityRequest) (*vo.CommunityRequestVO, error) {
	if err := s.userRepo.UpsertUser(ctx, &entities.User{
		ID:   identity.UserID,
		Name: identity.UserName,
		Role: identity.Role,
	}); err != nil {
		return nil, fmt.Errorf("同步用户影子记录失败: %w", err)
	}

	request := &entities.CommunityRequest{
		UserID:      identity.UserID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Status:      enums.Pending,
	}
	if err := s.requestRepo.CreateCommunityRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("建社申请已提交",
		zap.Uint64("requestID", request.ID),
		zap.String("userID", identity.UserID),
		zap.String("name", req.Name),
	)

	created, err := s.requestRepo.GetCommunityRequestByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	return vo.NewCommunityRequestVOFromEntity(created), nil
}

// ApproveCommunityRequest 批准建社申请，审批结论与社区创建在同一事务内落库。
func (s *communityService) ApproveCommunityRequest(ctx context.Context, requestID uint64) (*vo.CommunityRequestVO, error) {
	request, err := s.requestRepo.GetCommunityRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.UpdateCommunityRequestStatus(ctx, tx, requestID, enums.Approved, ""); err != nil {
			return err
		}
		community := &entities.Community{
			Name:        request.Name,
			Description: request.Description,
			Category:    request.Category,
		}
		return s.communityRepo.CreateCommunity(ctx, tx, community)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("建社申请已批准", zap.Uint64("requestID", requestID), zap.String("name", request.Name))

	updated, err := s.requestRepo.GetCommunityRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return vo.NewCommunityRequestVOFromEntity(updated), nil
}

// RejectCommunityRequest 驳回建社申请。
func (s *communityService) RejectCommunityRequest(ctx context.Context, requestID uint64, reason string) (*vo.CommunityRequestVO, error) {
	if err := s.requestRepo.UpdateCommunityRequestStatus(ctx, s.db, requestID, enums.Rejected, reason); err != nil {
		return nil, err
	}

	s.logger.Info("建社申请已驳回", zap.Uint64("requestID", requestID), zap.String("reason", reason))

	updated, err := s.requestRepo.GetCommunityRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return vo.NewCommunityRequestVOFromEntity(updated), nil
}

// ListCommunityRequests 查询建社申请队列。
func (s *communityService) ListCommunityRequests(ctx context.Context, status enums.Status) ([]*vo.CommunityRequestVO, error) {
	requests, err := s.requestRepo.ListCommunityRequestsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return vo.MapCommunityRequestsToVOs(requests), nil
}
