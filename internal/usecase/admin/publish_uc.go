package admin

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"autoviz-server/internal/common"
	"autoviz-server/internal/logger"
	"autoviz-server/internal/model"
	"autoviz-server/internal/service"
)

// PublishStage 发布流程所处阶段
type PublishStage string

const (
	StageValidating PublishStage = "validating"
	StageStored     PublishStage = "stored"
	StagePersisted  PublishStage = "persisted"
	StageVisualized PublishStage = "visualized"
	StageNotified   PublishStage = "notified"
	StageDone       PublishStage = "done"
)

type PublishInput struct {
	Title    string
	File     *multipart.FileHeader
	Columns  []string
	AuthorID uint
}

type PublishResult struct {
	PostID                 uint
	SourceFilePath         string
	VisualizationImagePath *string
	Stage                  PublishStage
}

// Publish 执行发布。入库成功后，可视化、归档与通知的失败都不会改变返回结果。
func (uc *PublishUseCase) Publish(ctx context.Context, input PublishInput) (*PublishResult, error) {
	// validating
	title, err := service.ValidateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if input.File == nil {
		return nil, common.NewValidationError("请选择要上传的文件")
	}
	columns := NormalizeColumns(input.Columns)

	// stored
	stored, err := uc.upload.Save(input.File)
	if err != nil {
		return nil, err
	}

	// persisted
	post := model.Post{
		Title:          title,
		SourceFilePath: stored.Path,
		AuthorID:       input.AuthorID,
	}
	if err := uc.posts.Create(&post); err != nil {
		uc.upload.Remove(stored)
		return nil, err
	}
	result := &PublishResult{PostID: post.ID, SourceFilePath: stored.Path, Stage: StagePersisted}
	logger.Infof("[publish] post=%d step=persist 已保存 %s", post.ID, stored.Path)

	// 客户端断开不影响后续步骤
	bg := context.WithoutCancel(ctx)

	if imagePath := uc.visualize(bg, post.ID, stored.Path, columns); imagePath != "" {
		result.VisualizationImagePath = &imagePath
	}
	result.Stage = StageVisualized

	uc.dispatch(bg, post, stored.Path, result.VisualizationImagePath)
	result.Stage = StageDone
	return result, nil
}

// Wait 等待后台通知任务结束
func (uc *PublishUseCase) Wait() {
	uc.wg.Wait()
}

func (uc *PublishUseCase) visualize(ctx context.Context, postID uint, sourcePath string, columns []string) (imagePath string) {
	bestEffort(postID, "visualize", func() error {
		path := uc.visualization.Visualize(ctx, postID, sourcePath, columns)
		if path == "" {
			return nil
		}
		if err := uc.posts.SetVisualization(postID, path); err != nil {
			return fmt.Errorf("record image path: %w", err)
		}
		imagePath = path
		return nil
	})
	return imagePath
}

// dispatch 在后台执行归档与通知
func (uc *PublishUseCase) dispatch(ctx context.Context, post model.Post, sourcePath string, imagePath *string) {
	if uc.archive == nil && uc.notification == nil {
		return
	}
	postID := post.ID
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		if uc.archive != nil {
			paths := []string{sourcePath}
			if imagePath != nil {
				paths = append(paths, *imagePath)
			}
			bestEffort(postID, "archive", func() error {
				return uc.archive.Archive(ctx, postID, paths...)
			})
		}
		if uc.notification != nil {
			bestEffort(postID, string(StageNotified), func() error {
				return uc.notification.AnnouncePost(ctx, &post)
			})
		}
	}()
}

// bestEffort 隔离失败与 panic，仅记录日志
func bestEffort(postID uint, step string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[publish] post=%d step=%s panic: %v", postID, step, r)
		}
	}()
	if err := fn(); err != nil {
		logger.Warningf("[publish] post=%d step=%s 失败: %v", postID, step, err)
	}
}

// NormalizeColumns 支持逗号分隔或重复字段，去空去重并保持顺序
func NormalizeColumns(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range raw {
		for _, col := range strings.Split(item, ",") {
			col = strings.TrimSpace(col)
			if col == "" || seen[col] {
				continue
			}
			seen[col] = true
			out = append(out, col)
		}
	}
	return out
}
