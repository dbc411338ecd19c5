package service

import (
	"errors"
	"strings"

	"autoviz-server/internal/common"
	"autoviz-server/internal/model"

	"gorm.io/gorm"
)

func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", common.NewValidationError("评论内容不能为空")
	}
	if len(content) > 4000 {
		return "", common.NewValidationError("评论内容过长")
	}
	return content, nil
}

func (s *CommentService) Create(postID, authorID uint, content string) (uint, error) {
	content, err := normalizeContent(content)
	if err != nil {
		return 0, err
	}
	if _, err := s.postStore.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.NewNotFoundError("帖子不存在")
		}
		return 0, common.NewInternalError("发表评论失败")
	}

	comment := model.Comment{PostID: postID, AuthorID: authorID, Content: content}
	if err := s.commentStore.Create(&comment); err != nil {
		return 0, common.NewInternalError("发表评论失败")
	}
	return comment.ID, nil
}

// Update 仅作者或管理员可修改
func (s *CommentService) Update(identity Identity, commentID uint, content string) error {
	content, err := normalizeContent(content)
	if err != nil {
		return err
	}
	if _, err := s.authorize(identity, commentID); err != nil {
		return err
	}
	if err := s.commentStore.UpdateContent(commentID, content); err != nil {
		return common.NewInternalError("修改评论失败")
	}
	return nil
}

// Delete 仅作者或管理员可删除
func (s *CommentService) Delete(identity Identity, commentID uint) error {
	if _, err := s.authorize(identity, commentID); err != nil {
		return err
	}
	if err := s.commentStore.Delete(commentID); err != nil {
		return common.NewInternalError("删除评论失败")
	}
	return nil
}

func (s *CommentService) authorize(identity Identity, commentID uint) (*model.Comment, error) {
	comment, err := s.commentStore.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("评论不存在")
		}
		return nil, common.NewInternalError("查询评论失败")
	}
	if comment.AuthorID != identity.UserID && !identity.IsAdmin() {
		return nil, common.NewForbiddenError("只能操作自己的评论")
	}
	return comment, nil
}
