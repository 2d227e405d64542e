package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/requestdata"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

func TestUserContextMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	um := NewUserContextMiddleware(testLogger(t))

	var seen uuid.UUID
	router := gin.New()
	router.Use(um.Require())
	router.GET("/ping", func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		require.NotNil(t, rd)
		seen = rd.UserID
		c.Status(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-ID", "not-a-uuid")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid header", func(t *testing.T) {
		userID := uuid.New()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-ID", userID.String())
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, userID, seen)
	})
}

func TestTimeoutMiddlewareDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tm := NewTimeoutMiddleware(testLogger(t), 50*time.Millisecond)

	router := gin.New()
	router.Use(tm.Deadline())
	router.GET("/slow", func(c *gin.Context) {
		// Blocks until the middleware deadline fires, writes nothing.
		<-c.Request.Context().Done()
	})
	router.GET("/fast", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	require.Equal(t, http.StatusGatewayTimeout, w.Code)
	require.Contains(t, w.Body.String(), "Request timeout exceeded")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
