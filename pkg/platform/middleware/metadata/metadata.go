// Package metadata records who is calling: the client address and User-Agent.
package metadata

import (
	"net"
	"net/http"
	"strings"

	"worldpop/pkg/requestcontext"
)

// proxyHeaders are consulted in order before the socket address.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// ClientMetadata stores the client address and User-Agent in the request
// context for the request logger.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), r.UserAgent())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest resolves the originating address. Of a forwarded chain
// only the first hop is kept.
func ClientIPFromRequest(r *http.Request) string {
	for _, h := range proxyHeaders {
		first, _, _ := strings.Cut(r.Header.Get(h), ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if r.RemoteAddr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
