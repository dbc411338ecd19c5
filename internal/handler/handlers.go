package handler

import "autoviz-server/internal/usecase/app"

type AuthHandler struct {
	authUC *app.AuthUseCase
}

type UserHandler struct {
	userUC *app.UserUseCase
}

type PostHandler struct {
	postUC *app.PostUseCase
}

type CommentHandler struct {
	commentUC *app.CommentUseCase
}

type TranslateHandler struct {
	translateUC *app.TranslateUseCase
}

type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Post      *PostHandler
	Comment   *CommentHandler
	Translate *TranslateHandler
}

func NewHandlers(uc *app.AppUseCase) *Handlers {
	return &Handlers{
		Auth:      &AuthHandler{authUC: uc.Auth},
		User:      &UserHandler{userUC: uc.User},
		Post:      &PostHandler{postUC: uc.Post},
		Comment:   &CommentHandler{commentUC: uc.Comment},
		Translate: &TranslateHandler{translateUC: uc.Translate},
	}
}
