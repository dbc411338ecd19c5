package admin

import (
	"net/http"

	"autoviz-server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Columns 读取上传表格首个工作表的表头
func (h *SheetHandler) Columns(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请上传表格文件"})
		return
	}

	columns, err := h.sheetUC.Columns(file)
	if err != nil {
		handler.WriteServiceError(c, err, "读取表头失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns})
}
