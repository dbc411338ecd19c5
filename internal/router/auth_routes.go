package router

import (
	"autoviz-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, bodyLimit, authLimiter gin.HandlerFunc, h *handler.AuthHandler) {
	auth := api.Group("/auth", bodyLimit, authLimiter)
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/find-id", h.FindID)
}
