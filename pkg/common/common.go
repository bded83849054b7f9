package common

import (
	"context"
	"strconv"
)

// CommonResponse is a lightweight response wrapper used by HTTP handlers.
type CommonResponse struct {
	Code  int         `json:"code"`
	Msg   string      `json:"msg,omitempty"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

type contextKey string

const (
	userIDKey        contextKey = "user_id"
	clientVersionKey contextKey = "client_version"
)

// ContextWithUserID stores user ID into context.
func ContextWithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retrieves the user ID from context.
func GetUserID(ctx context.Context) (int, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case string:
		id, err := strconv.Atoi(val)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// ContextWithClientVersion stores client version info into context.
func ContextWithClientVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, clientVersionKey, version)
}

// GetClientVersion retrieves client version from context.
func GetClientVersion(ctx context.Context) string {
	v := ctx.Value(clientVersionKey)
	if v == nil {
		return ""
	}
	if version, ok := v.(string); ok {
		return version
	}
	return ""
}
