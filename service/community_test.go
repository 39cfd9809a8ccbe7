package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/myErrors"
)

type communityServiceFixture struct {
	svc           CommunityService
	communityRepo *fakeCommunityRepo
	requestRepo   *fakeCommunityRequestRepo
	userRepo      *fakeUserRepo
}

func newCommunityServiceFixture(t *testing.T) *communityServiceFixture {
	t.Helper()
	f := &communityServiceFixture{
		communityRepo: newFakeCommunityRepo(),
		requestRepo:   newFakeCommunityRequestRepo(),
		userRepo:      newFakeUserRepo(),
	}
	f.svc = NewCommunityService(nil, f.communityRepo, f.requestRepo, f.userRepo, newTestLogger(t))
	return f
}

func TestCreateCommunity_AndGet(t *testing.T) {
	f := newCommunityServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateCommunity(ctx, &dto.CreateCommunityRequest{
		Name:        "fitness",
		Description: "movement and exercise",
		Category:    "health",
		Color:       "#00aa55",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.EqualValues(t, 0, created.Members)

	got, err := f.svc.GetCommunityByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "fitness", got.Name)
	assert.Equal(t, "#00aa55", got.Color)
}

func TestCreateCommunity_DuplicateNamesAllowed(t *testing.T) {
	f := newCommunityServiceFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateCommunity(ctx, &dto.CreateCommunityRequest{Name: "fitness"})
	require.NoError(t, err)
	second, err := f.svc.CreateCommunity(ctx, &dto.CreateCommunityRequest{Name: "fitness"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdateCommunity_NilFieldsUntouched(t *testing.T) {
	f := newCommunityServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateCommunity(ctx, &dto.CreateCommunityRequest{
		Name:        "fitness",
		Description: "original",
	})
	require.NoError(t, err)

	newName := "fitness-2"
	updated, err := f.svc.UpdateCommunity(ctx, created.ID, &dto.UpdateCommunityRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "fitness-2", updated.Name)
	assert.Equal(t, "original", updated.Description)
}

func TestDeleteCommunity_UnknownID(t *testing.T) {
	f := newCommunityServiceFixture(t)

	err := f.svc.DeleteCommunity(context.Background(), 404)
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestRequestCommunity_CreatesPendingRequest(t *testing.T) {
	f := newCommunityServiceFixture(t)
	ctx := context.Background()

	request, err := f.svc.RequestCommunity(ctx, testIdentity("user-1"), &dto.RequestCommunityRequest{
		Name:        "sleep",
		Description: "rest and recovery",
		Category:    "health",
	})
	require.NoError(t, err)

	assert.Equal(t, commonEnums.Pending, request.Status)
	assert.Equal(t, "sleep", request.Name)

	// 申请人影子记录被刷新。
	user, err := f.userRepo.GetUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestRejectCommunityRequest_TerminalState(t *testing.T) {
	f := newCommunityServiceFixture(t)
	ctx := context.Background()

	request, err := f.svc.RequestCommunity(ctx, testIdentity("user-1"), &dto.RequestCommunityRequest{Name: "sleep"})
	require.NoError(t, err)

	rejected, err := f.svc.RejectCommunityRequest(ctx, request.ID, "too narrow")
	require.NoError(t, err)
	assert.Equal(t, commonEnums.Rejected, rejected.Status)
	assert.Equal(t, "too narrow", rejected.Reason)

	// 终态后再驳回或查询状态都不可改变。
	_, err = f.svc.RejectCommunityRequest(ctx, request.ID, "again")
	require.ErrorIs(t, err, myErrors.ErrRequestAlreadyDecided)

	// 驳回不创建社区。
	communities, err := f.svc.ListCommunities(ctx)
	require.NoError(t, err)
	assert.Empty(t, communities)
}

func TestListCommunityRequests_FiltersByStatus(t *testing.T) {
	f := newCommunityServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.RequestCommunity(ctx, testIdentity("user-1"), &dto.RequestCommunityRequest{Name: "sleep"})
	require.NoError(t, err)
	second, err := f.svc.RequestCommunity(ctx, testIdentity("user-2"), &dto.RequestCommunityRequest{Name: "stress"})
	require.NoError(t, err)

	_, err = f.svc.RejectCommunityRequest(ctx, second.ID, "no")
	require.NoError(t, err)

	pending, err := f.svc.ListCommunityRequests(ctx, commonEnums.Pending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "sleep", pending[0].Name)

	rejectedList, err := f.svc.ListCommunityRequests(ctx, commonEnums.Rejected)
	require.NoError(t, err)
	require.Len(t, rejectedList, 1)
	assert.Equal(t, "stress", rejectedList[0].Name)
}
