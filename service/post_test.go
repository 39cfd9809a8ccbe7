package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/events"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
)

type postServiceFixture struct {
	svc             PostService
	postRepo        *fakePostRepo
	communityRepo   *fakeCommunityRepo
	interactionRepo *fakeInteractionRepo
	activityRepo    *fakeActivityRepo
	hub             *capturingHub
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()
	f := &postServiceFixture{
		postRepo:        newFakePostRepo(),
		communityRepo:   newFakeCommunityRepo(),
		interactionRepo: newFakeInteractionRepo(),
		activityRepo:    newFakeActivityRepo(),
		hub:             &capturingHub{},
	}
	f.svc = NewPostService(nil, f.postRepo, f.communityRepo, f.interactionRepo, f.activityRepo, f.hub, nil, newTestLogger(t))
	return f
}

func TestCreatePost_HumanIsValidatedAndPublished(t *testing.T) {
	f := newPostServiceFixture(t)

	post, err := f.svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Title:     "Morning walk tips",
		Content:   "Start slow.",
		Community: "fitness",
	}, "user-1", "alice")
	require.NoError(t, err)

	assert.Equal(t, enums.Validated, post.ValidationStatus)
	assert.True(t, post.Published)
	assert.False(t, post.AIGenerated)
	assert.Equal(t, "user-1", post.AuthorID)
	assert.Equal(t, "alice", post.AuthorName)
	assert.NotZero(t, post.ID)

	event, ok := f.hub.last()
	require.True(t, ok)
	assert.Equal(t, events.PostCreated, event.Name)
	payload, ok := event.Payload.(*vo.PostVO)
	require.True(t, ok)
	assert.Equal(t, post.ID, payload.ID)
}

func TestCreatePost_AIFlagIsPendingAndUnpublished(t *testing.T) {
	f := newPostServiceFixture(t)

	post, err := f.svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Title:       "Generated tip",
		Community:   "nutrition",
		AIGenerated: true,
	}, "user-1", "alice")
	require.NoError(t, err)

	assert.Equal(t, enums.ValidationPending, post.ValidationStatus)
	assert.False(t, post.Published)
	assert.True(t, post.AIGenerated)

	event, ok := f.hub.last()
	require.True(t, ok)
	assert.Equal(t, events.PostAICreated, event.Name)
}

func TestCreateAIPost_UsesAIAuthorName(t *testing.T) {
	f := newPostServiceFixture(t)

	post, err := f.svc.CreateAIPost(context.Background(), &dto.CreateAIPostRequest{
		Title:     "fitness Daily Health Tip",
		Content:   "Stretch before running.",
		Community: "fitness",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.AIAuthorName, post.AuthorName)
	assert.Empty(t, post.AuthorID)
	assert.Equal(t, enums.ValidationPending, post.ValidationStatus)
	assert.False(t, post.Published)
}

func TestCreatePost_BumpsCommunityActivity(t *testing.T) {
	f := newPostServiceFixture(t)
	community := f.communityRepo.seed("fitness")

	_, err := f.svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Title:     "Hello",
		Community: "fitness",
	}, "user-1", "alice")
	require.NoError(t, err)

	// 活跃度更新是异步旁路写入。
	require.Eventually(t, func() bool {
		return f.activityRepo.countFor(community.ID) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestListPosts_OnlyPublished(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreatePost(ctx, &dto.CreatePostRequest{Title: "public", Community: "fitness"}, "u", "alice")
	require.NoError(t, err)
	_, err = f.svc.CreateAIPost(ctx, &dto.CreateAIPostRequest{Title: "draft", Community: "fitness"})
	require.NoError(t, err)

	posts, err := f.svc.ListPosts(ctx, &dto.ListPostsQuery{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "public", posts[0].Title)
}

func TestEditPost_RecordsEditor(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, &dto.CreatePostRequest{Title: "before", Community: "fitness"}, "u", "alice")
	require.NoError(t, err)

	newTitle := "after"
	edited, err := f.svc.EditPost(ctx, created.ID, &dto.EditPostRequest{Title: &newTitle}, "bob")
	require.NoError(t, err)

	assert.Equal(t, "after", edited.Title)
	assert.Equal(t, "bob", edited.EditedBy)
	// 编辑不触碰状态开关。
	assert.Equal(t, enums.Validated, edited.ValidationStatus)
	assert.True(t, edited.Published)
}

func TestAddComment_PublishesCommentEvent(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, &dto.CreatePostRequest{Title: "post", Community: "fitness"}, "u", "alice")
	require.NoError(t, err)

	comment, err := f.svc.AddComment(ctx, created.ID, &dto.CommentRequest{Content: "nice"}, "user-2", "bob")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, "bob", comment.AuthorName)

	event, ok := f.hub.last()
	require.True(t, ok)
	require.Equal(t, events.PostComment, event.Name)
	payload, ok := event.Payload.(events.PostCommentPayload)
	require.True(t, ok)
	assert.Equal(t, created.ID, payload.PostID)
	assert.Equal(t, "nice", payload.Comment.Content)
}

func TestToggleReaction_TwiceReturnsToInitialState(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, &dto.CreatePostRequest{Title: "post", Community: "fitness"}, "u", "alice")
	require.NoError(t, err)

	reactions, err := f.svc.ToggleReaction(ctx, created.ID, &dto.ReactRequest{Type: "heart"}, "user-2")
	require.NoError(t, err)
	require.Len(t, reactions, 1)
	assert.Equal(t, "user-2", reactions[0].UserID)
	assert.Equal(t, "heart", reactions[0].Type)

	reactions, err = f.svc.ToggleReaction(ctx, created.ID, &dto.ReactRequest{Type: "heart"}, "user-2")
	require.NoError(t, err)
	assert.Empty(t, reactions)

	event, ok := f.hub.last()
	require.True(t, ok)
	require.Equal(t, events.PostReact, event.Name)
	payload, ok := event.Payload.(events.PostReactPayload)
	require.True(t, ok)
	assert.Equal(t, created.ID, payload.PostID)
	assert.Empty(t, payload.Reactions)
}

func TestToggleReaction_DifferentTypesCoexist(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, &dto.CreatePostRequest{Title: "post", Community: "fitness"}, "u", "alice")
	require.NoError(t, err)

	_, err = f.svc.ToggleReaction(ctx, created.ID, &dto.ReactRequest{Type: "heart"}, "user-2")
	require.NoError(t, err)
	reactions, err := f.svc.ToggleReaction(ctx, created.ID, &dto.ReactRequest{Type: "like"}, "user-2")
	require.NoError(t, err)

	assert.Len(t, reactions, 2)
}
