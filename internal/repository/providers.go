package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User    UserStore
	Post    PostStore
	Comment CommentStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &PostRepository{db: db}
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}

func NewRepositories(user UserStore, post PostStore, comment CommentStore) *Repositories {
	return &Repositories{
		User:    user,
		Post:    post,
		Comment: comment,
	}
}
