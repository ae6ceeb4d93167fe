package router

import (
	"chirp-go/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	relationHandler *handler.RelationHandler,
	searchHandler *handler.SearchHandler,
	authMiddleware gin.HandlerFunc,
	viewerMiddleware gin.HandlerFunc,
) {
	api := r.Group("/api")

	// --- 认证模块 ---
	api.POST("/signup", authHandler.SignUp)
	api.POST("/signin", authHandler.SignIn)

	// --- 用户模块 ---
	users := api.Group("/users", authMiddleware, viewerMiddleware)
	{
		users.GET("/top", relationHandler.GetTopUsers)
		users.GET("/search", searchHandler.SearchUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.GET("/:id/followings", relationHandler.GetFollowings)
		users.GET("/:id/followers", relationHandler.GetFollowers)
	}

	// --- 关注关系模块 ---
	followships := api.Group("/followships", authMiddleware, viewerMiddleware)
	{
		followships.POST("/:id", relationHandler.Follow)
		followships.DELETE("/:id", relationHandler.Unfollow)
	}
}
