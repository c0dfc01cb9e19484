package admin

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mbticonsultant/internal/metrics"
)

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	router := NewRouter(metrics.New(), func(*http.Request) error { return nil })

	rec := serve(router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHealthzUnavailable(t *testing.T) {
	router := NewRouter(metrics.New(), func(*http.Request) error { return errors.New("table unreadable") })

	rec := serve(router, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "table unreadable")
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	m.ObserveRender(metrics.OutcomeNotFound, time.Millisecond)

	rec := serve(NewRouter(m, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `mbti_renders_total{outcome="not_found"} 1`)
}

func TestProfilerMounted(t *testing.T) {
	rec := serve(NewRouter(metrics.New(), nil), "/debug/pprof/")
	assert.Equal(t, http.StatusOK, rec.Code)
}
