package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	identity, ok := MustIdentity(c)
	if !ok {
		return
	}
	postID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	id, err := h.commentUC.Create(postID, identity, req.Content)
	if err != nil {
		WriteServiceError(c, err, "发表评论失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"commentId": id, "message": "评论成功"})
}

func (h *CommentHandler) Update(c *gin.Context) {
	identity, ok := MustIdentity(c)
	if !ok {
		return
	}
	commentID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.commentUC.Update(identity, commentID, req.Content); err != nil {
		WriteServiceError(c, err, "修改评论失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评论已修改"})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	identity, ok := MustIdentity(c)
	if !ok {
		return
	}
	commentID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentUC.Delete(identity, commentID); err != nil {
		WriteServiceError(c, err, "删除评论失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评论已删除"})
}
