package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollmath/odds-api/internal/handlers/api"
	"github.com/rollmath/odds-api/internal/pkg/idgen"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(api.RequestID(idgen.NewSequential("req")))
	router.GET("/healthz", api.Health)
	return router
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "req_1", recorder.Header().Get(api.RequestIDHeader))
}

func TestRequestID_HonorsClientHeader(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(api.RequestIDHeader, "client-supplied")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "client-supplied", recorder.Header().Get(api.RequestIDHeader))
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(api.Timeout(time.Minute))
	router.GET("/check", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		require.True(t, ok, "request context should carry a deadline")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestTimeout_ExpiresRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(api.Timeout(5 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		// Stand-in for a long computation waiting at a cooperative
		// check point.
		select {
		case <-c.Request.Context().Done():
			assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
			c.Status(http.StatusGatewayTimeout)
		case <-time.After(5 * time.Second):
			c.Status(http.StatusOK)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusGatewayTimeout, recorder.Code)
}

func TestHealth(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}
