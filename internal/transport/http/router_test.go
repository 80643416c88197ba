package httptransport_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldpop/internal/platform/logger"
	"worldpop/internal/platform/metrics"
	"worldpop/internal/population"
	"worldpop/internal/population/handler"
	"worldpop/internal/population/store"
	httptransport "worldpop/internal/transport/http"
	"worldpop/pkg/platform/middleware/requestid"
	"worldpop/pkg/platform/middleware/version"
	"worldpop/pkg/testutil"
)

func newRouter(t *testing.T, checks map[string]httptransport.HealthCheck) http.Handler {
	t.Helper()
	source := store.NewInMemory()
	store.SeedSampleWorld(source)
	svc, err := population.NewService(source)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	return httptransport.NewRouter(httptransport.Deps{
		Logger:       logger.Discard(),
		Metrics:      metrics.New(reg),
		Gatherer:     reg,
		HealthChecks: checks,
		Population:   population.NewHandler(svc, logger.Discard()),
	})
}

func TestRouter_ContinentBreakdown(t *testing.T) {
	router := newRouter(t, nil)

	resp := testutil.Get(t, router, "/v1/population/continents")

	resp.AssertStatus(http.StatusOK)
	assert.Equal(t, "v1", resp.Header().Get(version.Header))
	assert.NotEmpty(t, resp.Header().Get(requestid.Header))

	report := testutil.Decode[handler.ReportResponse[handler.BreakdownEntry]](resp)
	assert.Equal(t, "continent", report.Level)
	require.Len(t, report.Results, 7)
	assert.Equal(t, "Africa", report.Results[0].Name)
	assert.Equal(t, "Antarctica", report.Results[1].Name)
	assert.Zero(t, report.Results[1].CityPercentage)
	for _, e := range report.Results {
		assert.Equal(t, e.TotalPopulation, e.CityPopulation+e.NonCityPopulation, e.Name)
	}
}

func TestRouter_KeepsCallerRequestID(t *testing.T) {
	router := newRouter(t, nil)

	resp := testutil.Get(t, router, "/v1/population/world", testutil.WithHeader(requestid.Header, "trace-me"))

	resp.AssertStatus(http.StatusOK)
	assert.Equal(t, "trace-me", resp.Header().Get(requestid.Header))
}

func TestRouter_Lookups(t *testing.T) {
	router := newRouter(t, nil)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"known country", "/v1/population/country/Japan", `{"level":"country","results":[{"name":"Japan","total_population":126714000}]}`},
		{"unknown country", "/v1/population/country/Unknownland", `{"level":"country","results":[]}`},
		{"world", "/v1/population/world", `{"level":"world","results":[{"name":"World","total_population":3424914800}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Get(t, router, tt.target)
			resp.AssertStatus(http.StatusOK)
			assert.JSONEq(t, tt.want, resp.Body.String())
		})
	}
}

func TestRouter_Languages(t *testing.T) {
	router := newRouter(t, nil)

	resp := testutil.Get(t, router, "/v1/languages")

	resp.AssertStatus(http.StatusOK)
	report := testutil.Decode[handler.ReportResponse[handler.LanguageEntry]](resp)
	require.NotEmpty(t, report.Results)
	assert.Equal(t, "Chinese", report.Results[0].Language)
}

func TestRouter_Errors(t *testing.T) {
	router := newRouter(t, nil)

	testutil.Get(t, router, "/v1/population/planet/Earth").AssertError(http.StatusBadRequest, "validation")
	testutil.Get(t, router, "/v2/anything").AssertError(http.StatusNotFound, "not_found")
}

func TestRouter_Metrics(t *testing.T) {
	router := newRouter(t, nil)
	testutil.Get(t, router, "/v1/population/regions").AssertStatus(http.StatusOK)

	resp := testutil.Get(t, router, "/metrics")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "worldpop_http_requests_total")
}

func TestHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name   string
		checks map[string]httptransport.HealthCheck
		status int
		want   string
	}{
		{"no dependencies", nil, http.StatusOK, `{"status":"ok"}`},
		{"healthy", map[string]httptransport.HealthCheck{"database": up}, http.StatusOK,
			`{"status":"ok","checks":{"database":"ok"}}`},
		{"cache down", map[string]httptransport.HealthCheck{"database": up, "redis": down}, http.StatusServiceUnavailable,
			`{"status":"degraded","checks":{"database":"ok","redis":"unavailable"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Get(t, newRouter(t, tt.checks), "/healthz")
			assert.Equal(t, tt.status, resp.Code)
			assert.JSONEq(t, tt.want, resp.Body.String())
		})
	}
}
