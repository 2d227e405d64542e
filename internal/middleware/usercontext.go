package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/requestdata"
)

// UserContextMiddleware establishes the per-request identity from the
// X-User-ID header. Authentication happens upstream of this service; here
// the header just has to be present and well-formed.
type UserContextMiddleware struct {
	log *logger.Logger
}

func NewUserContextMiddleware(log *logger.Logger) *UserContextMiddleware {
	return &UserContextMiddleware{log: log.With("Middleware", "UserContextMiddleware")}
}

func (um *UserContextMiddleware) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid X-User-ID header"})
			return
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
