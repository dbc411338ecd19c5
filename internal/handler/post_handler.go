package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type postListItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postUC.List()
	if err != nil {
		WriteServiceError(c, err, "获取帖子列表失败")
		return
	}
	list := make([]postListItem, 0, len(posts))
	for _, p := range posts {
		list = append(list, postListItem{ID: p.ID, Title: p.Title, Username: p.Username, CreatedAt: p.CreatedAt})
	}
	c.JSON(http.StatusOK, list)
}

func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.postUC.Detail(id)
	if err != nil {
		WriteServiceError(c, err, "获取帖子详情失败")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Data 返回表格数据预览，sheetNames 保持工作表顺序
func (h *PostHandler) Data(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	sheets, err := h.postUC.Data(id)
	if err != nil {
		WriteServiceError(c, err, "读取数据失败")
		return
	}

	names := make([]string, 0, len(sheets))
	data := make(map[string][]map[string]any, len(sheets))
	for _, s := range sheets {
		names = append(names, s.Name)
		data[s.Name] = s.Rows
	}
	c.JSON(http.StatusOK, gin.H{"sheetNames": names, "sheets": data})
}
