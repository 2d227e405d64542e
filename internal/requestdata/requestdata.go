package requestdata

import (
	"context"

	"github.com/google/uuid"
)

type requestDataKeyType struct{}

var requestDataKey = requestDataKeyType{}

// RequestData carries the per-request identity established by the
// user-context middleware. Authentication itself happens upstream.
type RequestData struct {
	UserID uuid.UUID
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
