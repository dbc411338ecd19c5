package router

import (
	"autoviz-server/internal/handler"
	"autoviz-server/internal/middleware"
	"autoviz-server/internal/service"

	"github.com/gin-gonic/gin"
)

// registerUserRoutes 任意已登录账号可访问的接口
func registerUserRoutes(api *gin.RouterGroup, bodyLimit gin.HandlerFunc, tokens *service.TokenService, h *handler.Handlers) {
	userGroup := api.Group("")
	userGroup.Use(middleware.JWTAuth(tokens))

	userGroup.GET("/posts", h.Post.List)
	userGroup.GET("/posts/:id", h.Post.Detail)
	userGroup.GET("/posts/:id/data", h.Post.Data)

	userGroup.POST("/posts/:id/comments", bodyLimit, h.Comment.Create)
	userGroup.PUT("/comments/:id", bodyLimit, h.Comment.Update)
	userGroup.DELETE("/comments/:id", h.Comment.Delete)

	userGroup.PUT("/users/password", bodyLimit, h.User.ChangePassword)
	userGroup.POST("/translate", bodyLimit, h.Translate.Translate)
}
