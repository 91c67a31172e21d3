package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/OrderClean/internal/core"
)

// WithRequestMetadata adds client IP and User-Agent to ctx for run logging.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ip := r.RemoteAddr // Already processed by TrustedRealIP
	ctx = core.ContextWithClientIP(ctx, ip)
	ctx = core.ContextWithUserAgent(ctx, r.UserAgent())
	return ctx
}
