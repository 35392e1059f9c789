package gemini

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"precise-baker/internal/infrastructure/config"
	"precise-baker/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client Gemini API 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// part 請求內容的單一片段，文字或圖片二選一
type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

// inlineData 內嵌圖片數據
type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// generateRequest generateContent 請求體
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

// NewClient 創建 Gemini 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Gemini.Timeout).
		SetQueryParam("key", cfg.Gemini.APIKey)

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate 生成回應。imageData 有值時改用視覺模型，
// 接受純 base64 或 data URI（會剝除前綴）。
func (c *Client) Generate(ctx context.Context, prompt, imageData string) (string, error) {
	model := c.config.Gemini.Model
	parts := []part{{Text: prompt}}

	if imageData != "" {
		model = c.config.Gemini.VisionModel
		mimeType, data := splitDataURI(imageData)
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     data,
		}})
	}

	req := &generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: c.config.Gemini.MaxTokens,
			Temperature:     0.7,
		},
	}

	// 非 HTTP 入口（例如測試）沒有請求 ID，補一個供追蹤
	callID := common.RequestIDFromContext(ctx)
	if callID == "" {
		callID = uuid.NewString()
	}

	start := time.Now()
	common.LogInfo("Sending request to Gemini",
		zap.String("model", model),
		zap.Int("prompt_length", len(prompt)),
		zap.Bool("multimodal", imageData != ""),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", model))

	if err != nil {
		common.LogAICall(time.Since(start), err, callID)
		return "", fmt.Errorf("failed to send request to Gemini: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		err := fmt.Errorf("Gemini API returned error (status %d): %s", resp.StatusCode(), resp.String())
		common.LogAICall(time.Since(start), err, callID)
		return "", err
	}

	// 解析回應
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
	}

	if err := common.DecodeJSON(bytes.NewReader(resp.Body()), &result); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if text == "" {
		return "", fmt.Errorf("empty content in Gemini response")
	}

	common.LogAICall(time.Since(start), nil, callID)
	return text, nil
}

// splitDataURI 拆解 data URI，回傳 MIME 類型與純 base64 數據。
// 非 data URI 時視為 JPEG。
func splitDataURI(imageData string) (mimeType, data string) {
	if !strings.HasPrefix(imageData, "data:") {
		return "image/jpeg", imageData
	}
	rest := strings.TrimPrefix(imageData, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "image/jpeg", imageData
	}
	return rest[:idx], rest[idx+len(";base64,"):]
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
