package repository

import (
	"time"

	"autoviz-server/internal/model"
)

// PostSummary 帖子列表项
type PostSummary struct {
	ID        uint
	Title     string
	Username  string
	CreatedAt time.Time
}

type PostStore interface {
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	List() ([]PostSummary, error)
	UpdateTitle(id uint, title string) error
	SetVisualizationPath(id uint, imagePath string) error
	DeleteWithComments(id uint) error
	CountAll() (int64, error)
}
