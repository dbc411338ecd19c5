package app

import (
	"autoviz-server/internal/repository"
	"autoviz-server/internal/service"
)

func (uc *PostUseCase) List() ([]repository.PostSummary, error) {
	return uc.posts.List()
}

func (uc *PostUseCase) Detail(postID uint) (*service.PostDetail, error) {
	return uc.posts.Detail(postID)
}

// Data 解析帖子对应的表格数据
func (uc *PostUseCase) Data(postID uint) ([]service.SheetPreview, error) {
	post, err := uc.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	return uc.sheets.Preview(post.SourceFilePath)
}
