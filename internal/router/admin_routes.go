package router

import (
	adminhandler "autoviz-server/internal/handler/admin"
	"autoviz-server/internal/middleware"
	"autoviz-server/internal/service"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(
	api *gin.RouterGroup,
	bodyLimit, uploadLimit, uploadLimiter gin.HandlerFunc,
	tokens *service.TokenService,
	h *adminhandler.Handlers,
) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(tokens))
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", h.System.ServerStats)

	adminGroup.POST("/posts", uploadLimiter, uploadLimit, h.Post.Create)
	adminGroup.PUT("/posts/:id", bodyLimit, h.Post.UpdateTitle)
	adminGroup.DELETE("/posts/:id", h.Post.Delete)

	adminGroup.POST("/sheets/columns", uploadLimiter, uploadLimit, h.Sheet.Columns)
}
