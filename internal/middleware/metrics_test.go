package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-oh/internal/domain"
	"tech-oh/internal/logger"
	"tech-oh/internal/metrics"
)

func metricsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/articles/:id", func(c *gin.Context) {
		if c.Param("id") == "missing" {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.POST("/articles", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "# metrics")
	})
	return router
}

func TestMetrics_CountsByRouteTemplate(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		route  string
		status string
	}{
		{name: "article found", method: http.MethodGet, target: "/articles/a1", route: "/articles/:id", status: "200"},
		{name: "article missing", method: http.MethodGet, target: "/articles/missing", route: "/articles/:id", status: "404"},
		{name: "create", method: http.MethodPost, target: "/articles", route: "/articles", status: "201"},
		{name: "no route", method: http.MethodGet, target: "/nowhere", route: "unmatched", status: "404"},
	}

	router := metricsRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, tt.status)
			before := testutil.ToFloat64(counter)
			inFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
			assert.Equal(t, inFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
		})
	}
}

func TestMetrics_DistinctIDsShareOneSeries(t *testing.T) {
	router := metricsRouter()
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/articles/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"x1", "x2", "x3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMetrics_SkipsScrapeEndpoint(t *testing.T) {
	router := metricsRouter()
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, testutil.ToFloat64(counter))
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: `"level":"INFO"`},
		{status: http.StatusNotFound, level: `"level":"WARN"`},
		{status: http.StatusServiceUnavailable, level: `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
			t.Cleanup(func() { logger.SetLogger(slog.Default()) })

			router := gin.New()
			router.Use(RequestID(), func(c *gin.Context) {
				c.Set(IdentityKey, domain.Identity{ID: "author-9"})
				c.Next()
			}, AccessLog())
			router.GET("/articles/:id", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/articles/abc", nil)
			req.Header.Set(RequestIDHeader, "access-log-id")
			router.ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			assert.Contains(t, out, "request completed")
			assert.Contains(t, out, `"route":"/articles/:id"`)
			assert.Contains(t, out, `"path":"/articles/abc"`)
			assert.Contains(t, out, `"author_id":"author-9"`)
			assert.Contains(t, out, "access-log-id")
			assert.Contains(t, out, tt.level)
		})
	}
}
