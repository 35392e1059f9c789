package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"

	"precise-baker/internal/pkg/common"

	_ "image/gif" // 支援 GIF
	_ "image/png" // 支援 PNG

	_ "golang.org/x/image/webp" // 支援 WebP
)

// Service 圖片處理服務。接受 URL、data URI 或純 base64，
// 一律轉成 JPEG data URI 後交給 AI 視覺模型。
type Service struct {
	maxSizeBytes int64
	httpClient   *http.Client
}

// NewService 創建圖片處理服務
func NewService(maxSizeBytes int64) *Service {
	return &Service{
		maxSizeBytes: maxSizeBytes,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Process 處理圖片，回傳 JPEG 格式的 data URI
func (s *Service) Process(imageData string) (string, error) {
	raw, err := s.loadBytes(imageData)
	if err != nil {
		return "", err
	}

	// 解碼並檢查格式
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", common.ErrInvalidImageFormat)
	}
	if !isSupportedFormat(format) {
		return "", fmt.Errorf("unsupported image format %q: %w", format, common.ErrInvalidImageFormat)
	}

	// 統一轉換為 JPEG
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode image as JPEG: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return fmt.Sprintf("data:image/jpeg;base64,%s", encoded), nil
}

// Validate 驗證圖片格式與大小，不做轉換
func (s *Service) Validate(imageData string) error {
	raw, err := s.loadBytes(imageData)
	if err != nil {
		return err
	}

	_, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", common.ErrInvalidImageFormat)
	}
	if !isSupportedFormat(format) {
		return fmt.Errorf("unsupported image format %q: %w", format, common.ErrInvalidImageFormat)
	}
	return nil
}

// loadBytes 取得圖片原始位元組並檢查大小上限。
// 支援 http(s) URL、data URI 與純 base64。
func (s *Service) loadBytes(imageData string) ([]byte, error) {
	if strings.HasPrefix(imageData, "http://") || strings.HasPrefix(imageData, "https://") {
		return s.download(imageData)
	}

	payload := imageData
	if strings.HasPrefix(imageData, "data:") {
		if !strings.HasPrefix(imageData, "data:image/") {
			return nil, fmt.Errorf("invalid image data format: %w", common.ErrInvalidImageFormat)
		}
		parts := strings.SplitN(imageData, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid base64 data format: %w", common.ErrInvalidImageFormat)
		}
		payload = parts[1]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", common.ErrInvalidImageFormat)
	}
	if int64(len(raw)) > s.maxSizeBytes {
		return nil, fmt.Errorf("image size %d exceeds limit of %d bytes: %w", len(raw), s.maxSizeBytes, common.ErrInvalidImageSize)
	}
	return raw, nil
}

// download 下載遠端圖片
func (s *Service) download(url string) ([]byte, error) {
	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status code %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if int64(len(raw)) > s.maxSizeBytes {
		return nil, fmt.Errorf("image size exceeds limit of %d bytes: %w", s.maxSizeBytes, common.ErrInvalidImageSize)
	}
	return raw, nil
}

// isSupportedFormat 檢查圖片格式是否支援
func isSupportedFormat(format string) bool {
	switch format {
	case "jpeg", "jpg", "png", "gif", "webp":
		return true
	}
	return false
}
