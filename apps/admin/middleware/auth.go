package middleware

import (
	"net/http"
	"strings"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/jwtauth"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "currentUser"

// Auth 鉴权中间件
// 缺 Token 返回 401；Token 无效/过期、用户已不存在或被停用返回 403
func Auth(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		// 格式必须是 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := jwtauth.ParseToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusForbidden, "invalid or expired token")
			c.Abort()
			return
		}

		// 每次请求回查用户，Token 有效期内被删/被停用也要拦住
		user, err := s.GetUserByID(claims.UserId)
		if err != nil || !user.IsActive {
			response.Error(c, http.StatusForbidden, "user no longer active")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出鉴权中间件放进来的用户
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	return v.(*model.User)
}
