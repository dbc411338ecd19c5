package admin

import adminuc "autoviz-server/internal/usecase/admin"

type PostHandler struct {
	publishUC *adminuc.PublishUseCase
	manageUC  *adminuc.PostManageUseCase
}

type SheetHandler struct {
	sheetUC *adminuc.SheetUseCase
}

type SystemHandler struct {
	statUC *adminuc.StatUseCase
}

type Handlers struct {
	Post   *PostHandler
	Sheet  *SheetHandler
	System *SystemHandler
}

func NewHandlers(uc *adminuc.AdminUseCase) *Handlers {
	return &Handlers{
		Post:   &PostHandler{publishUC: uc.Publish, manageUC: uc.Post},
		Sheet:  &SheetHandler{sheetUC: uc.Sheet},
		System: &SystemHandler{statUC: uc.Stat},
	}
}
