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

// MembershipService 定义了入社申请与成员关系的业务接口。
// 申请审批与直接加入两条路径都收敛到仓库层的同一组成员关系原语上，
// 成员计数只会经由该原语变动。
type MembershipService interface {
	// RequestJoin 提交入社申请。
	// - 同一 (user, community) 已有 pending 申请时返回 myErrors.ErrJoinRequestPending。
	RequestJoin(ctx context.Context, identity *middleware.Identity, communityID uint64, req *dto.JoinCommunityRequest) (*vo.JoinRequestVO, error)

	// ApproveJoin 批准申请：置 approved 并建立成员关系（幂等，重复批准不重复计数）。
	ApproveJoin(ctx context.Context, requestID uint64) (*vo.JoinRequestVO, error)

	// RejectJoin 驳回申请并记录理由。
	RejectJoin(ctx context.Context, requestID uint64, reason string) (*vo.JoinRequestVO, error)

	// ListJoinRequests 按状态查询申请队列。
	ListJoinRequests(ctx context.Context, status enums.Status) ([]*vo.JoinRequestVO, error)

	// JoinDirect 绕过审批直接加入社区。
	JoinDirect(ctx context.Context, identity *middleware.Identity, communityID uint64) error

	// LeaveDirect 退出社区，成员计数递减但不会降到负数。
	LeaveDirect(ctx context.Context, userID string, communityID uint64) error

	// ListJoinedCommunities 返回用户已加入的社区列表。
	ListJoinedCommunities(ctx context.Context, userID string) ([]*vo.CommunityVO, error)
}

// membershipService 是 MembershipService 接口的具体实现。
type membershipService struct {
	db             *gorm.DB
	membershipRepo mysql.MembershipRepository
	communityRepo  mysql.CommunityRepository
	userRepo       mysql.UserRepository
	logger         *core.ZapLogger
}

// NewMembershipService 是 membershipService 的构造函数。
func NewMembershipService(
	db *gorm.DB,
	membershipRepo mysql.MembershipRepository,
	communityRepo mysql.CommunityRepository,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) MembershipService {
	return &membershipService{
		db:             db,
		membershipRepo: membershipRepo,
		communityRepo:  communityRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// syncUserShadow 把网关透传的身份刷进本地影子表，供申请列表 populate 使用。
func (s *membershipService) syncUserShadow(ctx context.Context, identity *middleware.Identity) error {
	return s.userRepo.UpsertUser(ctx, &entities.User{
		ID:   identity.UserID,
		Name: identity.UserName,
		Role: identity.Role,
	})
}

// RequestJoin 提交入社申请。
func (s *membershipService) RequestJoin(ctx context.Context, identity *middleware.Identity, communityID uint64, req *dto.JoinCommunityRequest) (*vo.JoinRequestVO, error) {
	// 先校验社区存在，避免产生指向空引用的申请。
	if _, err := s.communityRepo.GetCommunityByID(ctx, communityID); err != nil {
		return nil, err
	}
	if err := s.syncUserShadow(ctx, identity); err != nil {
		return nil, fmt.Errorf("同步用户影子记录失败: %w", err)
	}

	request := &entities.JoinRequest{
		UserID:      identity.UserID,
		CommunityID: communityID,
		Status:      enums.Pending,
		Reason:      req.Reason,
	}
	if err := s.membershipRepo.CreateJoinRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("入社申请已提交",
		zap.String("userID", identity.UserID),
		zap.Uint64("communityID", communityID),
	)

	// 重新读取以带出 populate 的用户与社区摘要。
	created, err := s.membershipRepo.GetJoinRequestByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	return vo.NewJoinRequestVOFromEntity(created), nil
}

// ApproveJoin 批准入社申请。
func (s *membershipService) ApproveJoin(ctx context.Context, requestID uint64) (*vo.JoinRequestVO, error) {
	request, err := s.membershipRepo.GetJoinRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepo.UpdateJoinRequestStatus(ctx, requestID, enums.Approved, ""); err != nil {
		return nil, err
	}

	// 成员关系建立失败时申请状态已翻转，记录错误但不回滚审批结论，
	// AddMember 幂等，重放同一申请可以补齐关系。
	if err := s.membershipRepo.AddMember(ctx, request.UserID, request.CommunityID); err != nil {
		s.logger.Error("批准后建立成员关系失败",
			zap.Error(err),
			zap.Uint64("requestID", requestID),
			zap.String("userID", request.UserID),
			zap.Uint64("communityID", request.CommunityID),
		)
		return nil, err
	}

	s.logger.Info("入社申请已批准",
		zap.Uint64("requestID", requestID),
		zap.String("userID", request.UserID),
		zap.Uint64("communityID", request.CommunityID),
	)

	updated, err := s.membershipRepo.GetJoinRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return vo.NewJoinRequestVOFromEntity(updated), nil
}

// RejectJoin 驳回入社申请。
func (s *membershipService) RejectJoin(ctx context.Context, requestID uint64, reason string) (*vo.JoinRequestVO, error) {
	if err := s.membershipRepo.UpdateJoinRequestStatus(ctx, requestID, enums.Rejected, reason); err != nil {
		return nil, err
	}

	s.logger.Info("入社申请已驳回", zap.Uint64("requestID", requestID), zap.String("reason", reason))

	updated, err := s.membershipRepo.GetJoinRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return vo.NewJoinRequestVOFromEntity(updated), nil
}

// ListJoinRequests 查询申请队列。
func (s *membershipService) ListJoinRequests(ctx context.Context, status enums.Status) ([]*vo.JoinRequestVO, error) {
	requests, err := s.membershipRepo.ListJoinRequestsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return vo.MapJoinRequestsToVOs(requests), nil
}

// JoinDirect 直接加入社区。
func (s *membershipService) JoinDirect(ctx context.Context, identity *middleware.Identity, communityID uint64) error {
	if _, err := s.communityRepo.GetCommunityByID(ctx, communityID); err != nil {
		return err
	}
	if err := s.syncUserShadow(ctx, identity); err != nil {
		return fmt.Errorf("同步用户影子记录失败: %w", err)
	}
	return s.membershipRepo.AddMember(ctx, identity.UserID, communityID)
}

// LeaveDirect 退出社区。
func (s *membershipService) LeaveDirect(ctx context.Context, userID string, communityID uint64) error {
	return s.membershipRepo.RemoveMember(ctx, userID, communityID)
}

// ListJoinedCommunities 返回用户已加入的社区列表。
func (s *membershipService) ListJoinedCommunities(ctx context.Context, userID string) ([]*vo.CommunityVO, error) {
	ids, err := s.membershipRepo.ListMemberCommunityIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	communities := make([]*vo.CommunityVO, 0, len(ids))
	for _, id := range ids {
		community, err := s.communityRepo.GetCommunityByID(ctx, id)
		if err != nil {
			// 社区可能已被硬删除而关系残留，跳过即可。
			s.logger.Warn("已加入的社区不存在，跳过", zap.Uint64("communityID", id), zap.Error(err))
			continue
		}
		communities = append(communities, vo.NewCommunityVOFromEntity(community))
	}
	return communities, nil
}
