package admin

import "autoviz-server/internal/service"

type AdminUseCase struct {
	Publish *PublishUseCase
	Post    *PostManageUseCase
	Sheet   *SheetUseCase
	Stat    *StatUseCase
}

// NewPublishUseCase archive 与 notification 可为 nil，表示未启用
func NewPublishUseCase(
	upload *service.UploadService,
	posts *service.PostService,
	visualization *service.VisualizationService,
	archive *service.ArchiveService,
	notification *service.NotificationService,
) *PublishUseCase {
	return &PublishUseCase{
		upload:        upload,
		posts:         posts,
		visualization: visualization,
		archive:       archive,
		notification:  notification,
	}
}

func NewPostManageUseCase(posts *service.PostService) *PostManageUseCase {
	return &PostManageUseCase{posts: posts}
}

func NewSheetUseCase(sheets *service.SheetService) *SheetUseCase {
	return &SheetUseCase{sheets: sheets}
}

func NewStatUseCase(stats *service.StatService) *StatUseCase {
	return &StatUseCase{stats: stats}
}

func NewAdminUseCase(publish *PublishUseCase, post *PostManageUseCase, sheet *SheetUseCase, stat *StatUseCase) *AdminUseCase {
	return &AdminUseCase{Publish: publish, Post: post, Sheet: sheet, Stat: stat}
}
