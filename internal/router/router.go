package router

import (
	"autoviz-server/internal/config"
	"autoviz-server/internal/handler"
	adminhandler "autoviz-server/internal/handler/admin"
	"autoviz-server/internal/middleware"
	"autoviz-server/internal/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// 上传文件名唯一，静态资源可长期缓存
const staticCacheControl = "public, max-age=31536000, immutable"

type Router struct {
	handlers      *handler.Handlers
	adminHandlers *adminhandler.Handlers
	tokens        *service.TokenService
}

func NewRouter(h *handler.Handlers, ah *adminhandler.Handlers, tokens *service.TokenService) *Router {
	return &Router{
		handlers:      h,
		adminHandlers: ah,
		tokens:        tokens,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := config.Get()

	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	registerStaticRoutes(r, cfg.Upload)

	api := r.Group("/api")
	api.Use(gzip.Gzip(gzip.DefaultCompression))

	authLimiter := middleware.RateLimitMiddleware("auth", cfg.RateLimit.Enabled, cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst)
	uploadLimiter := middleware.RateLimitMiddleware("upload", cfg.RateLimit.Enabled, cfg.RateLimit.UploadRPS, cfg.RateLimit.UploadBurst)
	jsonLimit := middleware.BodyLimitMiddleware(0)
	uploadLimit := middleware.UploadBodyLimitMiddleware(cfg.Upload.MaxSizeMB)

	registerPublicRoutes(api)
	registerAuthRoutes(api, jsonLimit, authLimiter, rt.handlers.Auth)
	registerUserRoutes(api, jsonLimit, rt.tokens, rt.handlers)
	registerAdminRoutes(api, jsonLimit, uploadLimit, uploadLimiter, rt.tokens, rt.adminHandlers)
}

func registerStaticRoutes(r *gin.Engine, cfg config.UploadConfig) {
	if cfg.URLPrefix != "" && cfg.Path != "" {
		r.Group(cfg.URLPrefix, middleware.StaticCacheMiddleware(staticCacheControl)).
			StaticFS("", gin.Dir(cfg.Path, false))
	}
	if cfg.VisibleURLPrefix != "" && cfg.VisiblePath != "" {
		r.Group(cfg.VisibleURLPrefix, middleware.StaticCacheMiddleware(staticCacheControl)).
			StaticFS("", gin.Dir(cfg.VisiblePath, false))
	}
}
