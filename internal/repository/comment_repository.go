package repository

import "autoviz-server/internal/model"

type CommentStore interface {
	Create(comment *model.Comment) error
	FindByID(id uint) (*model.Comment, error)
	ListByPostID(postID uint) ([]model.Comment, error)
	UpdateContent(id uint, content string) error
	Delete(id uint) error
	CountAll() (int64, error)
}
