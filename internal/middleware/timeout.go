package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

// TimeoutMiddleware caps every API request at a hard deadline so the
// service answers within its response-time requirement even when a
// downstream call stalls.
type TimeoutMiddleware struct {
	log     *logger.Logger
	timeout time.Duration
}

func NewTimeoutMiddleware(log *logger.Logger, timeout time.Duration) *TimeoutMiddleware {
	if timeout <= 0 {
		timeout = 55 * time.Second
	}
	return &TimeoutMiddleware{log: log.With("Middleware", "TimeoutMiddleware"), timeout: timeout}
}

func (tm *TimeoutMiddleware) Deadline() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), tm.timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			tm.log.Warn("Request exceeded deadline", "path", c.FullPath(), "timeout", tm.timeout.String())
			c.JSON(http.StatusGatewayTimeout, gin.H{"message": "Request timeout exceeded. Please try again."})
		}
	}
}
