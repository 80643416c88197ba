package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"worldpop/pkg/requestcontext"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/population/continents", nil)
	req = req.WithContext(requestcontext.WithRequestID(req.Context(), "req-42"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "status=503")
	assert.Contains(t, out, "path=/v1/population/continents")
}

func TestRequestLogger_UserAgent(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := RequestLogger(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v1/population/world", nil)
	ctx := requestcontext.WithClientMetadata(req.Context(), "10.0.0.1",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "client_ip=10.0.0.1")
	assert.Contains(t, out, "bot=true")
}
