package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Translate 支持单条 text 或批量 texts
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req struct {
		Text       *string  `json:"text"`
		Texts      []string `json:"texts"`
		TargetLang string   `json:"targetLang"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	switch {
	case req.Text != nil:
		out, err := h.translateUC.TranslateOne(c.Request.Context(), *req.Text, req.TargetLang)
		if err != nil {
			WriteServiceError(c, err, "翻译失败")
			return
		}
		c.JSON(http.StatusOK, gin.H{"translatedText": out})
	case req.Texts != nil:
		out, err := h.translateUC.TranslateMany(c.Request.Context(), req.Texts, req.TargetLang)
		if err != nil {
			WriteServiceError(c, err, "翻译失败")
			return
		}
		c.JSON(http.StatusOK, gin.H{"translations": out})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "text 或 texts 不能为空"})
	}
}
