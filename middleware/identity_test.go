package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/enums"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

func newIdentityRouter(t *testing.T, extra ...gin.HandlerFunc) (*gin.Engine, *[]*Identity) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen []*Identity
	router := gin.New()
	router.Use(IdentityMiddleware(newTestLogger(t)))
	handlers := append(extra, func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		seen = append(seen, identity)
		c.Status(http.StatusOK)
	})
	router.GET("/whoami", handlers...)
	return router, &seen
}

func doRequest(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestIdentityMiddleware_ExtractsHeaders(t *testing.T) {
	router, seen := newIdentityRouter(t)

	resp := doRequest(router, map[string]string{
		constant.UserIDHeader:   "user-1",
		constant.UserNameHeader: "alice",
		constant.UserRoleHeader: string(enums.RoleDoctor),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, *seen, 1)
	identity := (*seen)[0]
	require.NotNil(t, identity)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "alice", identity.UserName)
	assert.Equal(t, enums.RoleDoctor, identity.Role)
}

func TestIdentityMiddleware_AnonymousPassesThrough(t *testing.T) {
	router, seen := newIdentityRouter(t)

	resp := doRequest(router, nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, *seen, 1)
	assert.Nil(t, (*seen)[0])
}

func TestIdentityMiddleware_UnknownRoleCleared(t *testing.T) {
	router, seen := newIdentityRouter(t)

	resp := doRequest(router, map[string]string{
		constant.UserIDHeader:   "user-1",
		constant.UserRoleHeader: "Wizard",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, *seen, 1)
	identity := (*seen)[0]
	require.NotNil(t, identity)
	assert.Empty(t, string(identity.Role))
}

func TestRequireIdentity_RejectsAnonymous(t *testing.T) {
	router, seen := newIdentityRouter(t, RequireIdentity())

	resp := doRequest(router, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Empty(t, *seen)
}

func TestRequireIdentity_AllowsAuthenticated(t *testing.T) {
	router, seen := newIdentityRouter(t, RequireIdentity())

	resp := doRequest(router, map[string]string{constant.UserIDHeader: "user-1"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, *seen, 1)
}

func TestRequireRoles_ForbidsWrongRole(t *testing.T) {
	router, seen := newIdentityRouter(t, RequireRoles(enums.RoleAdmin, enums.RoleSuperAdmin))

	resp := doRequest(router, map[string]string{
		constant.UserIDHeader:   "user-1",
		constant.UserRoleHeader: string(enums.RolePatient),
	})

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Empty(t, *seen)
}

func TestRequireRoles_AllowsPermittedRole(t *testing.T) {
	router, seen := newIdentityRouter(t, RequireRoles(enums.RoleDoctor, enums.RoleAdmin))

	resp := doRequest(router, map[string]string{
		constant.UserIDHeader:   "user-1",
		constant.UserRoleHeader: string(enums.RoleAdmin),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, *seen, 1)
}

func TestRequireRoles_AnonymousGetsUnauthorized(t *testing.T) {
	router, seen := newIdentityRouter(t, RequireRoles(enums.RoleAdmin))

	resp := doRequest(router, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Empty(t, *seen)
}
