package app

import "autoviz-server/internal/service"

func (uc *CommentUseCase) Create(postID uint, identity service.Identity, content string) (uint, error) {
	return uc.comments.Create(postID, identity.UserID, content)
}

func (uc *CommentUseCase) Update(identity service.Identity, commentID uint, content string) error {
	return uc.comments.Update(identity, commentID, content)
}

func (uc *CommentUseCase) Delete(identity service.Identity, commentID uint) error {
	return uc.comments.Delete(identity, commentID)
}
