package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/middleware"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
)

type membershipServiceFixture struct {
	svc            MembershipService
	membershipRepo *fakeMembershipRepo
	communityRepo  *fakeCommunityRepo
	userRepo       *fakeUserRepo
}

func newMembershipServiceFixture(t *testing.T) *membershipServiceFixture {
	t.Helper()
	f := &membershipServiceFixture{
		membershipRepo: newFakeMembershipRepo(),
		communityRepo:  newFakeCommunityRepo(),
		userRepo:       newFakeUserRepo(),
	}
	f.svc = NewMembershipService(nil, f.membershipRepo, f.communityRepo, f.userRepo, newTestLogger(t))
	return f
}

func testIdentity(userID string) *middleware.Identity {
	return &middleware.Identity{
		UserID:   userID,
		UserName: "alice",
		Role:     enums.RolePatient,
	}
}

func TestRequestJoin_CreatesPendingRequest(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")

	request, err := f.svc.RequestJoin(context.Background(), testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{Reason: "want in"})
	require.NoError(t, err)

	assert.Equal(t, commonEnums.Pending, request.Status)
	assert.NotZero(t, request.ID)

	// 身份影子记录被刷新，申请列表才能 populate 申请人。
	user, err := f.userRepo.GetUserByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestRequestJoin_UnknownCommunity(t *testing.T) {
	f := newMembershipServiceFixture(t)

	_, err := f.svc.RequestJoin(context.Background(), testIdentity("user-1"), 404, &dto.JoinCommunityRequest{})
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestRequestJoin_DuplicatePendingRejected(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	_, err := f.svc.RequestJoin(ctx, testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{})
	require.NoError(t, err)

	_, err = f.svc.RequestJoin(ctx, testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{})
	require.ErrorIs(t, err, myErrors.ErrJoinRequestPending)
}

func TestApproveJoin_AddsMember(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	request, err := f.svc.RequestJoin(ctx, testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{})
	require.NoError(t, err)

	approved, err := f.svc.ApproveJoin(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, commonEnums.Approved, approved.Status)

	isMember, err := f.membershipRepo.IsMember(ctx, "user-1", community.ID)
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestApproveJoin_TerminalStateIsFinal(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	request, err := f.svc.RequestJoin(ctx, testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{})
	require.NoError(t, err)

	_, err = f.svc.ApproveJoin(ctx, request.ID)
	require.NoError(t, err)

	// 批准后再驳回：pending 之外没有可用转移。
	_, err = f.svc.RejectJoin(ctx, request.ID, "changed my mind")
	require.ErrorIs(t, err, myErrors.ErrRequestAlreadyDecided)

	stored, err := f.membershipRepo.GetJoinRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, commonEnums.Approved, stored.Status)
}

func TestRejectJoin_RecordsReason(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	request, err := f.svc.RequestJoin(ctx, testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{})
	require.NoError(t, err)

	rejected, err := f.svc.RejectJoin(ctx, request.ID, "community is full")
	require.NoError(t, err)
	assert.Equal(t, commonEnums.Rejected, rejected.Status)
	assert.Equal(t, "community is full", rejected.Reason)

	// 驳回不建立成员关系。
	isMember, err := f.membershipRepo.IsMember(ctx, "user-1", community.ID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestApproveJoin_SurfacesAddMemberFailure(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	request, err := f.svc.RequestJoin(ctx, testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{})
	require.NoError(t, err)

	f.membershipRepo.addMemberErr = errors.New("db gone")
	_, err = f.svc.ApproveJoin(ctx, request.ID)
	require.Error(t, err)
}

func TestJoinDirect_Idempotent(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	require.NoError(t, f.svc.JoinDirect(ctx, testIdentity("user-1"), community.ID))
	require.NoError(t, f.svc.JoinDirect(ctx, testIdentity("user-1"), community.ID))

	isMember, err := f.membershipRepo.IsMember(ctx, "user-1", community.ID)
	require.NoError(t, err)
	assert.True(t, isMember)
	assert.Equal(t, 2, f.membershipRepo.addMemberCalls)
}

func TestJoinDirect_UnknownCommunity(t *testing.T) {
	f := newMembershipServiceFixture(t)

	err := f.svc.JoinDirect(context.Background(), testIdentity("user-1"), 404)
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestLeaveDirect_RemovesMembership(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	require.NoError(t, f.svc.JoinDirect(ctx, testIdentity("user-1"), community.ID))
	require.NoError(t, f.svc.LeaveDirect(ctx, "user-1", community.ID))

	isMember, err := f.membershipRepo.IsMember(ctx, "user-1", community.ID)
	require.NoError(t, err)
	assert.False(t, isMember)

	// 再退一次是幂等空操作。
	require.NoError(t, f.svc.LeaveDirect(ctx, "user-1", community.ID))
}

func TestListJoinedCommunities_SkipsMissing(t *testing.T) {
	f := newMembershipServiceFixture(t)
	ctx := context.Background()

	kept := f.communityRepo.seed("fitness")
	doomed := f.communityRepo.seed("nutrition")
	require.NoError(t, f.svc.JoinDirect(ctx, testIdentity("user-1"), kept.ID))
	require.NoError(t, f.svc.JoinDirect(ctx, testIdentity("user-1"), doomed.ID))

	require.NoError(t, f.communityRepo.DeleteCommunity(ctx, doomed.ID))

	communities, err := f.svc.ListJoinedCommunities(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, communities, 1)
	assert.Equal(t, "fitness", communities[0].Name)
}

func TestListJoinRequests_FiltersByStatus(t *testing.T) {
	f := newMembershipServiceFixture(t)
	community := f.communityRepo.seed("fitness")
	ctx := context.Background()

	first, err := f.svc.RequestJoin(ctx, testIdentity("user-1"), community.ID, &dto.JoinCommunityRequest{})
	require.NoError(t, err)
	_, err = f.svc.RequestJoin(ctx, testIdentity("user-2"), community.ID, &dto.JoinCommunityRequest{})
	require.NoError(t, err)

	_, err = f.svc.ApproveJoin(ctx, first.ID)
	require.NoError(t, err)

	pending, err := f.svc.ListJoinRequests(ctx, commonEnums.Pending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	approved, err := f.svc.ListJoinRequests(ctx, commonEnums.Approved)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}
