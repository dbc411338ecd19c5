package di

import (
	"autoviz-server/internal/router"
	"autoviz-server/internal/usecase/admin"
)

type Application struct {
	Router  *router.Router
	Publish *admin.PublishUseCase
}

func NewApplication(r *router.Router, publish *admin.PublishUseCase) *Application {
	return &Application{
		Router:  r,
		Publish: publish,
	}
}
