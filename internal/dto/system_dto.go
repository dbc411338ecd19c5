package dto

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStatsResponse struct {
	PostCount    int64              `json:"post_count"`
	CommentCount int64              `json:"comment_count"`
	UserCount    int64              `json:"user_count"`
	StorageUsage int64              `json:"storage_usage"`
	SystemInfo   SystemInfoResponse `json:"system_info"`
}
