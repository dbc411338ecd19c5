package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"autoviz-server/internal/common"
	"autoviz-server/internal/logger"
	"autoviz-server/internal/model"
	"autoviz-server/internal/repository"

	"gorm.io/gorm"
)

const maxTitleLength = 255

// CommentView 帖子详情中的评论
type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"authorId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetail 帖子详情
type PostDetail struct {
	ID                     uint          `json:"id"`
	Title                  string        `json:"title"`
	AuthorID               uint          `json:"authorId"`
	Username               string        `json:"username"`
	SourceFilePath         string        `json:"sourceFilePath"`
	SourceFileURL          string        `json:"sourceFileUrl"`
	VisualizationImagePath *string       `json:"visualizationImagePath"`
	VisualizationURL       *string       `json:"visualizationUrl"`
	CreatedAt              time.Time     `json:"createdAt"`
	Comments               []CommentView `json:"comments"`
}

// ValidateTitle 去除首尾空白并检查长度
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", common.NewValidationError("标题不能为空")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", common.NewValidationError("标题过长")
	}
	return title, nil
}

func (s *PostService) Create(post *model.Post) error {
	if err := s.postStore.Create(post); err != nil {
		logger.Errorf("创建帖子失败: %v", err)
		return common.NewInternalError("保存帖子失败")
	}
	return nil
}

func (s *PostService) SetVisualization(postID uint, imagePath string) error {
	return s.postStore.SetVisualizationPath(postID, imagePath)
}

func (s *PostService) List() ([]repository.PostSummary, error) {
	posts, err := s.postStore.List()
	if err != nil {
		logger.Errorf("查询帖子列表失败: %v", err)
		return nil, common.NewInternalError("查询帖子列表失败")
	}
	return posts, nil
}

func (s *PostService) FindByID(id uint) (*model.Post, error) {
	post, err := s.postStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("帖子不存在")
		}
		return nil, common.NewInternalError("查询帖子失败")
	}
	return post, nil
}

// Detail 返回帖子、访问地址及按时间正序的评论
func (s *PostService) Detail(id uint) (*PostDetail, error) {
	post, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentStore.ListByPostID(id)
	if err != nil {
		logger.Errorf("查询评论失败 post=%d: %v", id, err)
		return nil, common.NewInternalError("查询评论失败")
	}

	detail := &PostDetail{
		ID:                     post.ID,
		Title:                  post.Title,
		AuthorID:               post.AuthorID,
		Username:               post.Author.Username,
		SourceFilePath:         post.SourceFilePath,
		SourceFileURL:          s.upload.SourceURL(post.SourceFilePath),
		VisualizationImagePath: post.VisualizationImagePath,
		CreatedAt:              post.CreatedAt,
		Comments:               make([]CommentView, 0, len(comments)),
	}
	if post.VisualizationImagePath != nil {
		u := s.upload.VisibleURL(*post.VisualizationImagePath)
		detail.VisualizationURL = &u
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			AuthorID:  c.AuthorID,
			Username:  c.Author.Username,
			CreatedAt: c.CreatedAt,
		})
	}
	return detail, nil
}

func (s *PostService) UpdateTitle(id uint, title string) error {
	title, err := ValidateTitle(title)
	if err != nil {
		return err
	}
	if err := s.postStore.UpdateTitle(id, title); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("帖子不存在")
		}
		return common.NewInternalError("更新帖子失败")
	}
	return nil
}

// Delete 删除帖子及评论，已存储的文件保留
func (s *PostService) Delete(id uint) error {
	if err := s.postStore.DeleteWithComments(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("帖子不存在")
		}
		logger.Errorf("删除帖子失败 post=%d: %v", id, err)
		return common.NewInternalError("删除帖子失败")
	}
	return nil
}
