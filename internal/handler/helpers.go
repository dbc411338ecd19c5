package handler

import (
	"net/http"
	"strconv"

	"autoviz-server/internal/common/httpx"
	"autoviz-server/internal/middleware"
	"autoviz-server/internal/service"

	"github.com/gin-gonic/gin"
)

func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}

// ParseIDParam 解析路径中的正整数 ID，失败时直接写入 400
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 ID"})
		return 0, false
	}
	return uint(id), true
}

// MustIdentity 读取当前身份，缺失时写入 401
func MustIdentity(c *gin.Context) (service.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return service.Identity{}, false
	}
	return identity, true
}
