// Package httpserver builds the http.Server for the report API.
package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	// writeSlack covers encoding and flushing after a report hits its deadline.
	writeSlack = 5 * time.Second
)

// New returns a server whose write timeout outlasts reportTimeout. Errors
// raised by net/http itself are logged at warn.
func New(addr string, handler http.Handler, reportTimeout time.Duration, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      reportTimeout + writeSlack,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
