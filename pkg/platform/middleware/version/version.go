// Package version tags requests served under a versioned route prefix.
package version

import (
	"net/http"

	"worldpop/pkg/requestcontext"
)

// Header names the response header echoing the served API version.
const Header = "API-Version"

// ExtractVersion is mounted on a versioned subrouter such as /v1. It puts
// version in the request context for logging and sets the API-Version header.
func ExtractVersion(version string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(Header, version)
			next.ServeHTTP(w, r.WithContext(requestcontext.WithAPIVersion(r.Context(), version)))
		})
	}
}
