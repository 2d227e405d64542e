package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/requestdata"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondServiceError maps service-layer sentinels onto HTTP statuses. A
// request-deadline expiry answers with the same 504 payload the timeout
// middleware uses, so callers see one timeout shape regardless of where the
// deadline was noticed.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"message": "Request timeout exceeded. Please try again."})
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.Is(err, pkgerrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// currentUserID pulls the identity placed by the user-context middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing user identity"))
		return uuid.Nil, false
	}
	return rd.UserID, true
}
