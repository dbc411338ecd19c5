package middleware

import (
	"errors"
	"net/http"
	"strings"

	"autoviz-server/internal/model"
	"autoviz-server/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextIdentityKey = "identity"
	ContextUserIDKey   = "id"
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

// JWTAuth 校验 Bearer 令牌并将身份写入上下文
func JWTAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		identity, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			msg := "Token 无效"
			if errors.Is(err, service.ErrTokenExpired) {
				msg = "Token 已过期，请重新登录"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set(ContextIdentityKey, *identity)
		c.Set(ContextUserIDKey, identity.UserID)
		c.Set(ContextUsernameKey, identity.Username)
		c.Set(ContextRoleKey, identity.Role)
		c.Next()
	}
}

// RequireRole 要求已认证身份具有指定角色
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
			c.Abort()
			return
		}
		if identity.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "权限不足"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return RequireRole(model.RoleAdmin)
}

// CurrentIdentity 读取 JWTAuth 写入的身份
func CurrentIdentity(c *gin.Context) (service.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return service.Identity{}, false
	}
	identity, ok := value.(service.Identity)
	return identity, ok
}
