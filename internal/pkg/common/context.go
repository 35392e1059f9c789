package common

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID 將請求 ID 附加到 context，供下游日誌關聯
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext 讀取 context 中的請求 ID，沒有時回傳空字串
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
