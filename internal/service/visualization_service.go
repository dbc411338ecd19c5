package service

import (
	"context"

	"autoviz-server/internal/logger"
)

// Visualize 尽力渲染图片，成功时返回图片路径，失败只记录日志并返回空串。
func (s *VisualizationService) Visualize(ctx context.Context, postID uint, inputPath string, columns []string) string {
	outputPath := s.upload.VisiblePathFor(inputPath)

	outcome := s.renderer.Render(ctx, inputPath, outputPath, columns)
	if !outcome.OK {
		logger.Warningf("[publish] post=%d step=visualize 渲染失败 (%s): %v", postID, outcome.Duration, outcome.Err)
		return ""
	}
	logger.Infof("[publish] post=%d step=visualize 渲染完成 %s (%s)", postID, outputPath, outcome.Duration)
	return outputPath
}
