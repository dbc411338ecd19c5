package app

import "autoviz-server/internal/service"

type AppUseCase struct {
	Auth      *AuthUseCase
	User      *UserUseCase
	Post      *PostUseCase
	Comment   *CommentUseCase
	Translate *TranslateUseCase
}

func NewAuthUseCase(credentials *service.CredentialService, tokens *service.TokenService) *AuthUseCase {
	return &AuthUseCase{credentials: credentials, tokens: tokens}
}

func NewUserUseCase(credentials *service.CredentialService) *UserUseCase {
	return &UserUseCase{credentials: credentials}
}

func NewPostUseCase(posts *service.PostService, sheets *service.SheetService) *PostUseCase {
	return &PostUseCase{posts: posts, sheets: sheets}
}

func NewCommentUseCase(comments *service.CommentService) *CommentUseCase {
	return &CommentUseCase{comments: comments}
}

func NewTranslateUseCase(translate *service.TranslateService) *TranslateUseCase {
	return &TranslateUseCase{translate: translate}
}

func NewAppUseCase(
	auth *AuthUseCase,
	user *UserUseCase,
	post *PostUseCase,
	comment *CommentUseCase,
	translate *TranslateUseCase,
) *AppUseCase {
	return &AppUseCase{
		Auth:      auth,
		User:      user,
		Post:      post,
		Comment:   comment,
		Translate: translate,
	}
}
