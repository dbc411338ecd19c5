package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"autoviz-server/internal/config"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Sender 通知发送通道
type Sender interface {
	Name() string
	// NeedsRecipients 为 true 时仅在存在手机号接收人时调用
	NeedsRecipients() bool
	Send(ctx context.Context, recipients []string, text string) error
}

// SMSGatewaySender 通过 HTTP 短信网关批量发送
type SMSGatewaySender struct {
	cfg    config.SMSConfig
	client *http.Client
	now    func() time.Time
}

func NewSMSGatewaySender(cfg config.SMSConfig, client *http.Client) *SMSGatewaySender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SMSGatewaySender{cfg: cfg, client: client, now: time.Now}
}

type smsMessage struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
}

type smsBatchRequest struct {
	Messages []smsMessage `json:"messages"`
}

type smsErrorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func (s *SMSGatewaySender) Name() string { return "sms" }

func (s *SMSGatewaySender) NeedsRecipients() bool { return true }

func (s *SMSGatewaySender) Send(ctx context.Context, recipients []string, text string) error {
	if len(recipients) == 0 {
		return nil
	}
	batch := smsBatchRequest{Messages: make([]smsMessage, 0, len(recipients))}
	for _, to := range recipients {
		batch.Messages = append(batch.Messages, smsMessage{To: to, From: s.cfg.From, Text: text})
	}
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("encode sms batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authorization())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gatewayErr smsErrorResponse
		if json.Unmarshal(raw, &gatewayErr) == nil && gatewayErr.ErrorCode != "" {
			return fmt.Errorf("sms gateway %d: %s %s", resp.StatusCode, gatewayErr.ErrorCode, gatewayErr.ErrorMessage)
		}
		return fmt.Errorf("sms gateway %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}

// authorization 生成 HMAC-SHA256 签名头：signature = HMAC(secret, date+salt)
func (s *SMSGatewaySender) authorization() string {
	date := s.now().UTC().Format(time.RFC3339)
	salt := strings.ReplaceAll(uuid.NewString(), "-", "")
	mac := hmac.New(sha256.New, []byte(s.cfg.APISecret))
	mac.Write([]byte(date + salt))
	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s",
		s.cfg.APIKey, date, salt, hex.EncodeToString(mac.Sum(nil)))
}

// TelegramSender 将公告同步到 Telegram 会话
type TelegramSender struct {
	bot     *telego.Bot
	chatIDs []int64
}

func NewTelegramSender(cfg config.TelegramConfig) (*TelegramSender, error) {
	chatIDs, err := ParseChatIDs(cfg.ChatIDs)
	if err != nil {
		return nil, err
	}
	if len(chatIDs) == 0 {
		return nil, errors.New("telegram chat_ids is empty")
	}
	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot, chatIDs: chatIDs}, nil
}

// ParseChatIDs 解析逗号分隔的会话 ID
func ParseChatIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid telegram chat id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (t *TelegramSender) Name() string { return "telegram" }

func (t *TelegramSender) NeedsRecipients() bool { return false }

func (t *TelegramSender) Send(ctx context.Context, _ []string, text string) error {
	var errs []error
	for _, chatID := range t.chatIDs {
		params := tu.Message(tu.ID(chatID), text)
		if _, err := t.bot.SendMessage(ctx, params); err != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}
