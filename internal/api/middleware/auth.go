package middleware

import (
	"strings"

	"chirp-go/internal/api/response"
	"chirp-go/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID          = "currentUserID"
	ContextKeyViewerFollowing = "viewerFollowing"
)

// AuthRequired JWT 认证中间件，要求请求必须携带有效 Token
func AuthRequired(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		claims, err := jwtService.Parse(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		// 将用户 ID 存入上下文，后续 Handler 可通过 GetCurrentUserID 获取
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// FollowingSetFetcher 查询某用户关注的用户 id 集合
type FollowingSetFetcher func(userID int64) (map[int64]bool, error)

// ViewerContext 加载登录者的关注集合（必须在 AuthRequired 之后使用）。
// 个人页、关注/粉丝列表和热门榜都依赖这个集合计算 is_followed。
func ViewerContext(fetcher FollowingSetFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetCurrentUserID(c)
		if !ok {
			response.Unauthorized(c, "缺少认证信息")
			c.Abort()
			return
		}

		following, err := fetcher(userID)
		if err != nil {
			response.InternalError(c, "加载用户关注信息失败")
			c.Abort()
			return
		}

		c.Set(ContextKeyViewerFollowing, following)
		c.Next()
	}
}

// GetViewerFollowing 从 Gin Context 中获取登录者的关注集合
func GetViewerFollowing(c *gin.Context) map[int64]bool {
	val, exists := c.Get(ContextKeyViewerFollowing)
	if !exists {
		return map[int64]bool{}
	}
	following, ok := val.(map[int64]bool)
	if !ok {
		return map[int64]bool{}
	}
	return following
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
