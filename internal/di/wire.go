//go:build wireinject
// +build wireinject

package di

import (
	"autoviz-server/internal/config"
	"autoviz-server/internal/handler"
	adminhandler "autoviz-server/internal/handler/admin"
	"autoviz-server/internal/repository"
	"autoviz-server/internal/router"
	"autoviz-server/internal/service"
	"autoviz-server/internal/usecase/admin"
	"autoviz-server/internal/usecase/app"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, cfg config.Config) (*Application, error) {
	wire.Build(
		repository.NewUserRepository,
		repository.NewPostRepository,
		repository.NewCommentRepository,
		provideUploadConfig,
		provideTranslateConfig,
		provideTokenService,
		provideRenderer,
		provideTranslateClient,
		provideSenders,
		provideNotificationService,
		provideArchiveService,
		service.NewIdempotencyStore,
		service.NewCredentialService,
		service.NewUploadService,
		service.NewVisualizationService,
		service.NewTranslateService,
		service.NewSheetService,
		service.NewPostService,
		service.NewCommentService,
		service.NewStatService,
		admin.NewPublishUseCase,
		admin.NewPostManageUseCase,
		admin.NewSheetUseCase,
		admin.NewStatUseCase,
		admin.NewAdminUseCase,
		app.NewAuthUseCase,
		app.NewUserUseCase,
		app.NewPostUseCase,
		app.NewCommentUseCase,
		app.NewTranslateUseCase,
		app.NewAppUseCase,
		handler.NewHandlers,
		adminhandler.NewHandlers,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
