package middleware

import "github.com/gin-gonic/gin"

// StaticCacheMiddleware 为静态资源添加 Cache-Control 头；上传文件名唯一，可长期缓存
func StaticCacheMiddleware(cacheControl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheControl != "" {
			c.Header("Cache-Control", cacheControl)
		}
		c.Next()
	}
}
