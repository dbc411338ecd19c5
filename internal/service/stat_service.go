package service

import (
	"runtime"

	"autoviz-server/internal/common"
	"autoviz-server/internal/dto"
)

// ServerStats 获取后台仪表盘统计数据。
func (s *StatService) ServerStats() (*dto.ServerStatsResponse, error) {
	postCount, err := s.postStore.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计帖子数据失败")
	}
	commentCount, err := s.commentStore.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计评论数据失败")
	}
	userCount, err := s.userStore.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计用户数据失败")
	}
	usage, err := s.upload.DiskUsage()
	if err != nil {
		return nil, common.NewInternalError("统计存储占用失败")
	}

	return &dto.ServerStatsResponse{
		PostCount:    postCount,
		CommentCount: commentCount,
		UserCount:    userCount,
		StorageUsage: usage,
		SystemInfo: dto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
