package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/events"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
)

type reviewServiceFixture struct {
	review ReviewService
	posts  PostService
	repo   *fakePostRepo
	hub    *capturingHub
}

func newReviewServiceFixture(t *testing.T) *reviewServiceFixture {
	t.Helper()
	f := &reviewServiceFixture{
		repo: newFakePostRepo(),
		hub:  &capturingHub{},
	}
	logger := newTestLogger(t)
	f.review = NewReviewService(f.repo, f.hub, logger)
	f.posts = NewPostService(nil, f.repo, newFakeCommunityRepo(), newFakeInteractionRepo(), newFakeActivityRepo(), f.hub, nil, logger)
	return f
}

func (f *reviewServiceFixture) createAIPost(t *testing.T) *vo.PostVO {
	t.Helper()
	post, err := f.posts.CreateAIPost(context.Background(), &dto.CreateAIPostRequest{
		Title:     "draft",
		Content:   "pending content",
		Community: "fitness",
	})
	require.NoError(t, err)
	return post
}

func TestValidate_ApprovesPendingPost(t *testing.T) {
	f := newReviewServiceFixture(t)
	post := f.createAIPost(t)

	validated, err := f.review.Validate(context.Background(), post.ID, enums.Validated, "dr-house")
	require.NoError(t, err)

	assert.Equal(t, enums.Validated, validated.ValidationStatus)
	assert.Equal(t, "dr-house", validated.EditedBy)
	// 裁定不触碰发布开关。
	assert.False(t, validated.Published)

	event, ok := f.hub.last()
	require.True(t, ok)
	require.Equal(t, events.PostValidated, event.Name)
	payload, ok := event.Payload.(events.PostValidatedPayload)
	require.True(t, ok)
	assert.Equal(t, post.ID, payload.PostID)
	assert.Equal(t, enums.Validated, payload.Status)
}

func TestValidate_RejectsPendingPost(t *testing.T) {
	f := newReviewServiceFixture(t)
	post := f.createAIPost(t)

	rejected, err := f.review.Validate(context.Background(), post.ID, enums.ValidationRejected, "dr-house")
	require.NoError(t, err)

	assert.Equal(t, enums.ValidationRejected, rejected.ValidationStatus)
	assert.False(t, rejected.Published)
}

func TestValidate_RefusesPendingAsVerdict(t *testing.T) {
	f := newReviewServiceFixture(t)
	post := f.createAIPost(t)

	_, err := f.review.Validate(context.Background(), post.ID, enums.ValidationPending, "dr-house")
	require.ErrorIs(t, err, myErrors.ErrInvalidValidationStatus)

	// 帖子保持原状。
	stored, repoErr := f.repo.GetPostByID(context.Background(), post.ID)
	require.NoError(t, repoErr)
	assert.Equal(t, enums.ValidationPending, stored.ValidationStatus)
}

func TestValidate_SecondVerdictOverwrites(t *testing.T) {
	f := newReviewServiceFixture(t)
	post := f.createAIPost(t)

	_, err := f.review.Validate(context.Background(), post.ID, enums.Validated, "first")
	require.NoError(t, err)

	// 重复裁定以后写为准，裁定人一并改写。
	_, err = f.review.Validate(context.Background(), post.ID, enums.ValidationRejected, "second")
	require.NoError(t, err)

	stored, repoErr := f.repo.GetPostByID(context.Background(), post.ID)
	require.NoError(t, repoErr)
	assert.Equal(t, enums.ValidationRejected, stored.ValidationStatus)
	assert.Equal(t, "second", stored.EditedBy)

	// 两次裁定各自都向事件通道广播。
	verdictCount := 0
	for _, name := range f.hub.names() {
		if name == events.PostValidated {
			verdictCount++
		}
	}
	require.Equal(t, 2, verdictCount)

	event, ok := f.hub.last()
	require.True(t, ok)
	require.Equal(t, events.PostValidated, event.Name)
	payload, ok := event.Payload.(events.PostValidatedPayload)
	require.True(t, ok)
	assert.Equal(t, enums.ValidationRejected, payload.Status)
}

func TestValidate_UnknownPost(t *testing.T) {
	f := newReviewServiceFixture(t)

	_, err := f.review.Validate(context.Background(), 404, enums.Validated, "dr-house")
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestPublish_IndependentOfValidation(t *testing.T) {
	f := newReviewServiceFixture(t)
	post := f.createAIPost(t)

	// 未经裁定也可以发布，发布开关不检查审核结果。
	published, err := f.review.Publish(context.Background(), post.ID)
	require.NoError(t, err)

	assert.True(t, published.Published)
	assert.Equal(t, enums.ValidationPending, published.ValidationStatus)

	event, ok := f.hub.last()
	require.True(t, ok)
	require.Equal(t, events.PostPublished, event.Name)
	payload, ok := event.Payload.(*vo.PostVO)
	require.True(t, ok)
	assert.Equal(t, post.ID, payload.ID)
	assert.True(t, payload.Published)
}

func TestListPendingAndUnpublished(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	first := f.createAIPost(t)
	second := f.createAIPost(t)

	pending, err := f.review.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// 裁定一条后，待审核队列缩短，但未发布列表不变。
	_, err = f.review.Validate(ctx, first.ID, enums.Validated, "dr-house")
	require.NoError(t, err)

	pending, err = f.review.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	unpublished, err := f.review.ListUnpublished(ctx)
	require.NoError(t, err)
	assert.Len(t, unpublished, 2)

	// 发布一条后从未发布列表消失。
	_, err = f.review.Publish(ctx, first.ID)
	require.NoError(t, err)

	unpublished, err = f.review.ListUnpublished(ctx)
	require.NoError(t, err)
	require.Len(t, unpublished, 1)
	assert.Equal(t, second.ID, unpublished[0].ID)
}
