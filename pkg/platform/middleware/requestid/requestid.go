// Package requestid propagates a per-request correlation ID.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"worldpop/pkg/requestcontext"
)

// Header is the request and response header carrying the ID.
const Header = "X-Request-ID"

// Middleware reuses an inbound X-Request-ID or generates a new UUID, stores it
// in the context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), reqID)))
	})
}
