// Package requestcontext carries request-scoped values (correlation ID,
// client metadata, API version) from HTTP middleware down to services and
// log lines without importing net/http.
package requestcontext

import "context"

type key int

const (
	requestIDKey key = iota
	clientIPKey
	userAgentKey
	apiVersionKey
)

func value(ctx context.Context, k key) string {
	s, _ := ctx.Value(k).(string)
	return s
}

// RequestID returns the correlation ID of the request, or "".
func RequestID(ctx context.Context) string { return value(ctx, requestIDKey) }

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ClientIP returns the caller's address as resolved by the metadata middleware.
func ClientIP(ctx context.Context) string { return value(ctx, clientIPKey) }

func UserAgent(ctx context.Context) string { return value(ctx, userAgentKey) }

// WithClientMetadata stores the caller's address and User-Agent.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey, clientIP)
	return context.WithValue(ctx, userAgentKey, userAgent)
}

// APIVersion returns the version prefix of the matched route, e.g. "v1".
func APIVersion(ctx context.Context) string { return value(ctx, apiVersionKey) }

func WithAPIVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, apiVersionKey, version)
}
