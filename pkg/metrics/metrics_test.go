package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, reg)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/offers/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/base-info", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	for _, target := range []string{"/api/offers/1", "/api/offers/2", "/api/base-info"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/offers/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/base-info", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, reg)
	m.requests.WithLabelValues("GET", "/api/orders", "200").Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `coderr_http_requests_total{method="GET",route="/api/orders",status="200"} 1`))
}
