package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"autoviz-server/internal/common"
	"autoviz-server/internal/logger"

	"github.com/goccy/go-json"
	"golang.org/x/text/language"
)

const maxTranslateTexts = 128

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NormalizeTargetLang 校验并规范化 BCP-47 语言标签
func NormalizeTargetLang(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", common.NewValidationError("targetLang 不能为空")
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", common.NewValidationError("targetLang 不是合法的语言标签")
	}
	return tag.String(), nil
}

// Translate 批量翻译，返回与输入等长的结果
func (s *TranslateService) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, common.NewValidationError("待翻译文本不能为空")
	}
	if len(texts) > maxTranslateTexts {
		return nil, common.NewValidationError(fmt.Sprintf("单次最多翻译 %d 条文本", maxTranslateTexts))
	}
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, common.NewValidationError("待翻译文本不能为空")
		}
	}
	target, err := NormalizeTargetLang(targetLang)
	if err != nil {
		return nil, err
	}

	translations, err := s.call(ctx, texts, target)
	if err != nil {
		logger.Warningf("翻译服务调用失败: %v", err)
		return nil, common.NewUpstreamError("翻译服务暂时不可用")
	}
	return translations, nil
}

func (s *TranslateService) call(ctx context.Context, texts []string, target string) ([]string, error) {
	body, err := json.Marshal(translateRequest{Q: texts, Target: target, Format: "text"})
	if err != nil {
		return nil, err
	}

	endpoint := s.cfg.APIURL
	if s.cfg.APIKey != "" {
		endpoint += "?key=" + url.QueryEscape(s.cfg.APIKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	var parsed translateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("upstream error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	if len(parsed.Data.Translations) != len(texts) {
		return nil, fmt.Errorf("expected %d translations, got %d", len(texts), len(parsed.Data.Translations))
	}

	out := make([]string, len(texts))
	for i, t := range parsed.Data.Translations {
		out[i] = t.TranslatedText
	}
	return out, nil
}
