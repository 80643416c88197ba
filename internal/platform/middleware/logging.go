package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/useragent"

	"worldpop/pkg/requestcontext"
)

// RequestLogger logs one line per request once the response is written.
// Server errors log at error level; everything else at info. The user agent
// is reduced to browser and OS names.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			ctx := r.Context()
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []any{
				"request_id", requestcontext.RequestID(ctx),
				"method", r.Method,
				"path", r.URL.Path,
				"api_version", requestcontext.APIVersion(ctx),
				"status", status,
				"bytes", ww.BytesWritten(),
				"client_ip", requestcontext.ClientIP(ctx),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if raw := requestcontext.UserAgent(ctx); raw != "" {
				ua := useragent.New(raw)
				browser, _ := ua.Browser()
				attrs = append(attrs, "browser", browser, "os", ua.OS(), "bot", ua.Bot())
			}
			logger.Log(ctx, level, "http request", attrs...)
		})
	}
}
