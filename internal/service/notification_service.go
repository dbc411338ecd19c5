package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autoviz-server/internal/logger"
	"autoviz-server/internal/model"
)

const announceKeyTTL = 7 * 24 * time.Hour

// NotifyAll 向所有可通知账号批量发送。任一通道成功即视为送达。
func (s *NotificationService) NotifyAll(ctx context.Context, text string) error {
	if len(s.senders) == 0 {
		logger.Debugf("未配置通知通道，跳过发送")
		return nil
	}

	phones, err := s.userStore.ListNotificationPhones()
	if err != nil {
		return fmt.Errorf("list notification phones: %w", err)
	}

	var (
		errs      []error
		delivered bool
	)
	for _, sender := range s.senders {
		if sender.NeedsRecipients() && len(phones) == 0 {
			continue
		}
		if err := s.sendWithRetry(ctx, sender, phones, text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sender.Name(), err))
			continue
		}
		delivered = true
	}
	if !delivered && len(errs) > 0 {
		return errors.Join(errs...)
	}
	if len(errs) > 0 {
		logger.Warningf("部分通知通道发送失败: %v", errors.Join(errs...))
	}
	return nil
}

// AnnounceKey 帖子公告的幂等键，由帖子 ID 与创建时间组成
func AnnounceKey(postID uint, createdAt time.Time) string {
	return fmt.Sprintf("notify:post:%d:%d", postID, createdAt.UnixMilli())
}

// AnnouncePost 每个帖子只公告一次；全部失败时释放键以便重试。
func (s *NotificationService) AnnouncePost(ctx context.Context, post *model.Post) error {
	postID, title := post.ID, post.Title
	key := AnnounceKey(postID, post.CreatedAt)
	claimed, err := s.idem.Claim(ctx, key, announceKeyTTL)
	if err != nil {
		logger.Warningf("[publish] post=%d step=notify 幂等键声明失败，继续发送: %v", postID, err)
	} else if !claimed {
		logger.Infof("[publish] post=%d step=notify 已公告，跳过", postID)
		return nil
	}

	if err := s.NotifyAll(ctx, s.messageFor(title)); err != nil {
		if claimed {
			_ = s.idem.Release(context.WithoutCancel(ctx), key)
		}
		return err
	}
	return nil
}

func (s *NotificationService) messageFor(title string) string {
	msg := strings.TrimSpace(s.message)
	if msg == "" {
		msg = "新的数据报告已发布"
	}
	if title == "" {
		return msg
	}
	return msg + " 《" + title + "》"
}

func (s *NotificationService) sendWithRetry(ctx context.Context, sender Sender, phones []string, text string) error {
	attempts := s.retryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		if lastErr = sender.Send(ctx, phones, text); lastErr == nil {
			return nil
		}
		logger.Warningf("通知通道 %s 第 %d/%d 次发送失败: %v", sender.Name(), i, attempts, lastErr)
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff * time.Duration(i)):
		}
	}
	return lastErr
}
