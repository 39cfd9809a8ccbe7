package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/middleware"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

// stubPostService 只实现路由测试触达的方法，其余调用视为测试缺陷。
type stubPostService struct {
	editCalls []string
}

func (s *stubPostService) CreatePost(ctx context.Context, req *dto.CreatePostRequest, authorID string, authorName string) (*vo.PostVO, error) {
	panic("unexpected call: CreatePost")
}

func (s *stubPostService) CreateAIPost(ctx context.Context, req *dto.CreateAIPostRequest) (*vo.PostVO, error) {
	panic("unexpected call: CreateAIPost")
}

func (s *stubPostService) GetPostByID(ctx context.Context, postID uint64) (*vo.PostVO, error) {
	panic("unexpected call: GetPostByID")
}

func (s *stubPostService) ListPosts(ctx context.Context, query *dto.ListPostsQuery) ([]*vo.PostVO, error) {
	panic("unexpected call: ListPosts")
}

func (s *stubPostService) EditPost(ctx context.Context, postID uint64, req *dto.EditPostRequest, editorName string) (*vo.PostVO, error) {
	s.editCalls = append(s.editCalls, editorName)
	return &vo.PostVO{ID: postID, EditedBy: editorName}, nil
}

func (s *stubPostService) AddComment(ctx context.Context, postID uint64, req *dto.CommentRequest, authorID string, authorName string) (*vo.CommentVO, error) {
	panic("unexpected call: AddComment")
}

func (s *stubPostService) ToggleReaction(ctx context.Context, postID uint64, req *dto.ReactRequest, userID string) ([]vo.ReactionVO, error) {
	panic("unexpected call: ToggleReaction")
}

func newPostRouter(t *testing.T) (*gin.Engine, *stubPostService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubPostService{}
	router := gin.New()
	group := router.Group("/api/v1/community", middleware.IdentityMiddleware(newTestLogger(t)))
	NewPostController(svc).RegisterRoutes(group)
	return router, svc
}

func doEditPost(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	title := "改后的标题"
	body, _ := json.Marshal(dto.EditPostRequest{Title: &title})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/community/posts/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestEditPost_PatientIsForbidden(t *testing.T) {
	router, svc := newPostRouter(t)

	resp := doEditPost(router, map[string]string{
		constant.UserIDHeader:   "user-1",
		constant.UserNameHeader: "bob",
		constant.UserRoleHeader: string(enums.RolePatient),
	})

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Empty(t, svc.editCalls)
}

func TestEditPost_AnonymousIsUnauthorized(t *testing.T) {
	router, svc := newPostRouter(t)

	resp := doEditPost(router, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Empty(t, svc.editCalls)
}

func TestEditPost_DoctorIsAllowed(t *testing.T) {
	router, svc := newPostRouter(t)

	resp := doEditPost(router, map[string]string{
		constant.UserIDHeader:   "user-2",
		constant.UserNameHeader: "dr-house",
		constant.UserRoleHeader: string(enums.RoleDoctor),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, svc.editCalls, 1)
	assert.Equal(t, "dr-house", svc.editCalls[0])
}
