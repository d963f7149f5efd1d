//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cuponera-backend/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCounters(t *testing.T) {
	m := metrics.New()
	m.ScanRegistered()
	m.ScanRegistered()
	m.ScanRejected("Conflict")

	expected := `
# HELP cuponera_coupon_scans_total Coupon scan attempts by outcome.
# TYPE cuponera_coupon_scans_total counter
cuponera_coupon_scans_total{outcome="registered"} 2
cuponera_coupon_scans_total{outcome="rejected_Conflict"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "cuponera_coupon_scans_total")
	require.NoError(t, err)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cuponera_http_request_duration_seconds_count{method="GET",route="/api/ping/:id",status="204"} 1`)
}
