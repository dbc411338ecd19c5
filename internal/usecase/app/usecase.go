package app

import "autoviz-server/internal/service"

type AuthUseCase struct {
	credentials *service.CredentialService
	tokens      *service.TokenService
}

type UserUseCase struct {
	credentials *service.CredentialService
}

type PostUseCase struct {
	posts  *service.PostService
	sheets *service.SheetService
}

type CommentUseCase struct {
	comments *service.CommentService
}

type TranslateUseCase struct {
	translate *service.TranslateService
}
