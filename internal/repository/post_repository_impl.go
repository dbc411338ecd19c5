package repository

import (
	"autoviz-server/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List 按 id 倒序返回帖子及作者用户名
func (r *PostRepository) List() ([]PostSummary, error) {
	var posts []model.Post
	if err := r.db.Preload("Author").Order("id desc").Find(&posts).Error; err != nil {
		return nil, err
	}

	list := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		list = append(list, PostSummary{
			ID:        post.ID,
			Title:     post.Title,
			Username:  post.Author.Username,
			CreatedAt: post.CreatedAt,
		})
	}
	return list, nil
}

func (r *PostRepository) UpdateTitle(id uint, title string) error {
	result := r.db.Model(&model.Post{}).Where("id = ?", id).Update("title", title)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepository) SetVisualizationPath(id uint, imagePath string) error {
	return r.db.Model(&model.Post{}).Where("id = ?", id).Update("visualization_image_path", imagePath).Error
}

// DeleteWithComments 在同一事务中删除帖子及其评论
func (r *PostRepository) DeleteWithComments(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func (r *PostRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Count(&count).Error
	return count, err
}
