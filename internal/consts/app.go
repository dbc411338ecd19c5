package consts

import "time"

const (
	ApplicationName    = "AutoViz Server"
	ApplicationVersion = "1.0.0"

	// TokenIssuer 登录令牌签发者
	TokenIssuer = "autoviz-server"
	// TokenTypeLogin 登录令牌类型
	TokenTypeLogin = "login"

	// MinPasswordLength 密码最小长度
	MinPasswordLength = 8

	// MaxSheetPreviewRows 数据预览每个工作表最多返回的行数
	MaxSheetPreviewRows = 100

	// VisualizationExt 可视化图片扩展名
	VisualizationExt = ".png"

	// ShutdownTimeout 停机等待时间
	ShutdownTimeout = 5 * time.Second
)
