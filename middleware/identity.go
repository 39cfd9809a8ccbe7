package middleware

import (
	"net/http"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/enums"
)

// Identity 承载网关透传的调用者身份。
// 认证本身在网关完成，本服务只消费透传结果。
type Identity struct {
	UserID   string
	UserName string
	Role     enums.UserRole
}

// IdentityMiddleware 从请求头提取身份三元组并放入请求上下文。
// - 头缺失时不拦截，公开接口允许匿名访问；需要身份的接口用 RequireIdentity 把关。
func IdentityMiddleware(logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(constant.UserIDHeader)
		if userID == "" {
			c.Next()
			return
		}

		role := enums.UserRole(c.GetHeader(constant.UserRoleHeader))
		if role != "" && !role.Valid() {
			logger.Warn("忽略无法识别的角色头",
				zap.String("userID", userID),
				zap.String("role", string(role)),
			)
			role = ""
		}

		c.Set(constant.IdentityContextKey, &Identity{
			UserID:   userID,
			UserName: c.GetHeader(constant.UserNameHeader),
			Role:     role,
		})
		c.Next()
	}
}

// CurrentIdentity 从请求上下文取出身份，未登录时第二个返回值为 false。
func CurrentIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(constant.IdentityContextKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	if !ok || identity.UserID == "" {
		return nil, false
	}
	return identity, true
}

// RequireIdentity 拦截未携带有效身份的请求。
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoles 拦截角色不在许可集合内的请求，隐含要求已登录。
func RequireRoles(roles ...enums.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少有效的用户身份")
			c.Abort()
			return
		}
		if !identity.Role.In(roles...) {
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "当前角色无权执行该操作")
			c.Abort()
			return
		}
		c.Next()
	}
}
