// Package testutil drives http.Handlers in tests and decodes the JSON
// envelopes the API answers with.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Response is a recorded reply bound to the test that produced it.
type Response struct {
	*httptest.ResponseRecorder
	t *testing.T
}

// RequestOption adjusts a request before it is served.
type RequestOption func(*http.Request)

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// Get serves a GET of target on h.
func Get(t *testing.T, h http.Handler, target string, opts ...RequestOption) *Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return &Response{ResponseRecorder: rec, t: t}
}

// Decode unmarshals the body into a T.
func Decode[T any](r *Response) T {
	r.t.Helper()
	var out T
	require.NoError(r.t, json.Unmarshal(r.Body.Bytes(), &out), "decode body: %s", r.Body.String())
	return out
}

// AssertStatus checks the status code and, for 2xx replies, the JSON content type.
func (r *Response) AssertStatus(want int) {
	r.t.Helper()
	assert.Equal(r.t, want, r.Code, "body: %s", r.Body.String())
	if want >= 200 && want < 300 {
		assert.Equal(r.t, "application/json", r.Header().Get("Content-Type"))
	}
}

// AssertError checks the status code and the "error" field of the envelope.
func (r *Response) AssertError(status int, code string) {
	r.t.Helper()
	assert.Equal(r.t, status, r.Code)
	body := Decode[map[string]string](r)
	assert.Equal(r.t, code, body["error"])
}
