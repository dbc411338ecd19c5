package admin

import (
	"errors"
	"net/http"

	"autoviz-server/internal/handler"
	adminuc "autoviz-server/internal/usecase/admin"

	"github.com/gin-gonic/gin"
)

// Create 上传表格并发布帖子
func (h *PostHandler) Create(c *gin.Context) {
	identity, ok := handler.MustIdentity(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请上传表格文件"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "上传内容解析失败"})
		return
	}

	res, err := h.publishUC.Publish(c.Request.Context(), adminuc.PublishInput{
		Title:    c.PostForm("title"),
		File:     file,
		Columns:  adminuc.NormalizeColumns(c.PostFormArray("columns")),
		AuthorID: identity.UserID,
	})
	if err != nil {
		handler.WriteServiceError(c, err, "发布失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"postId":                 res.PostID,
		"sourceFilePath":         res.SourceFilePath,
		"visualizationImagePath": res.VisualizationImagePath,
		"message":                "发布成功",
	})
}

func (h *PostHandler) UpdateTitle(c *gin.Context) {
	id, ok := handler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.manageUC.UpdateTitle(id, req.Title); err != nil {
		handler.WriteServiceError(c, err, "修改标题失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "标题已更新"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.manageUC.Delete(id); err != nil {
		handler.WriteServiceError(c, err, "删除帖子失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "帖子已删除"})
}
