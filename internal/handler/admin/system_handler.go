package admin

import (
	"net/http"

	"autoviz-server/internal/handler"

	"github.com/gin-gonic/gin"
)

// ServerStats 获取服务器概览统计信息
func (h *SystemHandler) ServerStats(c *gin.Context) {
	stats, err := h.statUC.ServerStats()
	if err != nil {
		handler.WriteServiceError(c, err, "获取统计数据失败")
		return
	}

	c.JSON(http.StatusOK, stats)
}
