package di

import (
	"context"
	"net/http"
	"time"

	"autoviz-server/internal/config"
	"autoviz-server/internal/logger"
	"autoviz-server/internal/repository"
	"autoviz-server/internal/service"
)

func provideUploadConfig(cfg config.Config) config.UploadConfig {
	return cfg.Upload
}

func provideTranslateConfig(cfg config.Config) config.TranslateConfig {
	return cfg.Translate
}

func provideTokenService(cfg config.Config) *service.TokenService {
	return service.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)
}

func provideRenderer(cfg config.Config) service.Renderer {
	name, args := service.ParseRenderCommand(cfg.Render.Command)
	return service.NewSubprocessRenderer(name, args, time.Duration(cfg.Render.TimeoutSeconds)*time.Second)
}

func provideTranslateClient() *http.Client {
	return nil
}

// provideSenders 按配置组装通知渠道，未启用的渠道不参与分发
func provideSenders(cfg config.Config) []service.Sender {
	var senders []service.Sender
	if cfg.SMS.Enabled {
		senders = append(senders, service.NewSMSGatewaySender(cfg.SMS, nil))
	}
	if cfg.Telegram.Enabled {
		tg, err := service.NewTelegramSender(cfg.Telegram)
		if err != nil {
			logger.Warningf("Telegram 通知初始化失败，已跳过: %v", err)
		} else {
			senders = append(senders, tg)
		}
	}
	return senders
}

func provideNotificationService(users repository.UserStore, senders []service.Sender, idem service.IdempotencyStore, cfg config.Config) *service.NotificationService {
	return service.NewNotificationService(users, senders, idem, service.NotificationOptions{
		Message:       cfg.SMS.Message,
		RetryAttempts: cfg.SMS.RetryAttempts,
		Backoff:       time.Duration(cfg.SMS.RetryBackoffMS) * time.Millisecond,
	})
}

// provideArchiveService S3 未启用时返回 nil，发布流程会跳过归档
func provideArchiveService(cfg config.Config) (*service.ArchiveService, error) {
	if !cfg.S3.Enabled {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := service.NewS3Client(ctx, cfg.S3)
	if err != nil {
		return nil, err
	}
	return service.NewArchiveService(client, cfg.S3.Bucket), nil
}
