package admin

import (
	"sync"

	"autoviz-server/internal/service"
)

// PublishUseCase 编排发布流程：校验 → 存储 → 入库 → 可视化 → 通知
type PublishUseCase struct {
	upload        *service.UploadService
	posts         *service.PostService
	visualization *service.VisualizationService
	archive       *service.ArchiveService
	notification  *service.NotificationService

	wg sync.WaitGroup
}

type PostManageUseCase struct {
	posts *service.PostService
}

type SheetUseCase struct {
	sheets *service.SheetService
}

type StatUseCase struct {
	stats *service.StatService
}
