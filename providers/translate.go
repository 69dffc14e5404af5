package providers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-agrisathi/models"
)

// Translator 文本翻译边界。翻译属于锦上添花的路径，
// 任何失败都返回原文，绝不向调用方抛错
type Translator interface {
	Translate(text, lang string) string
}

// NoopTranslator 未配置翻译服务时的占位实现
type NoopTranslator struct{}

// Translate 原样返回
func (NoopTranslator) Translate(text, _ string) string { return text }

// HTTPTranslator 调用谷歌翻译的公开gtx接口
type HTTPTranslator struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewHTTPTranslator 创建一个HTTP翻译客户端
func NewHTTPTranslator() *HTTPTranslator {
	return &HTTPTranslator{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		BaseURL:    "https://translate.googleapis.com/translate_a/single",
	}
}

// Translate 实现Translator接口
func (t *HTTPTranslator) Translate(text, lang string) string {
	if lang == models.LangEnglish || text == "" {
		return text
	}

	params := url.Values{
		"client": {"gtx"},
		"sl":     {models.LangEnglish},
		"tl":     {lang},
		"dt":     {"t"},
		"q":      {text},
	}
	resp, err := t.HTTPClient.Get(t.BaseURL + "?" + params.Encode())
	if err != nil {
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return text
	}

	// 响应形如 [[["译文","原文",...],...],...]
	var payload []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return text
	}
	if len(payload) == 0 {
		return text
	}
	chunks, ok := payload[0].([]interface{})
	if !ok {
		return text
	}

	var sb strings.Builder
	for _, chunk := range chunks {
		parts, ok := chunk.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return text
	}
	return sb.String()
}
