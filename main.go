package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"autoviz-server/internal/config"
	"autoviz-server/internal/consts"
	"autoviz-server/internal/db"
	"autoviz-server/internal/di"
	"autoviz-server/internal/logger"
	"autoviz-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()

	logger.InitLogger(logger.ParseLevel(cfg.Log.Level), cfg.Log.Folder)
	defer logger.CloseLogger()

	for _, dir := range []string{cfg.Upload.Path, cfg.Upload.VisiblePath} {
		if err := ensurePublicDir(dir); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}

	gormDB := db.InitDB()

	application, err := di.InitializeApplication(gormDB, cfg)
	if err != nil {
		log.Fatalf("❌ 应用初始化失败: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	r := newEngine(application)

	// 导出模式
	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			log.Fatalf("❌ 导出路由失败: %v", err)
		}
		fmt.Println("✅ 路由已成功导出到 routes.json")
		return
	}

	printWelcomeMessage(cfg.Server.Port)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Infof("🚀 服务启动成功，运行在 :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), consts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("❌ 服务强制关闭: %v", err)
	}

	// 等待后台通知任务结束
	application.Publish.Wait()

	if err := service.CloseRedisClient(); err != nil {
		logger.Warningf("关闭 Redis 连接失败: %v", err)
	}
	logger.Infof("✅ 服务已退出")
}

func newEngine(application *di.Application) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	application.Router.Init(r)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}

func printWelcomeMessage(port string) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, target string) error {
	routes := r.Routes()
	exportList := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	data, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(target, data, 0644)
}

// ensurePublicDir 校验静态目录位置后创建目录
func ensurePublicDir(path string) error {
	if err := checkSecurePath(path); err != nil {
		return err
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("无法创建目录 %s: %w", path, err)
	}
	return nil
}

// checkSecurePath 静态资源目录必须位于工作目录下的安全子目录中
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}

	allowedDirs := []string{"uploads", "public", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 必须位于安全子目录中 (如 %v)", path, allowedDirs)
}
