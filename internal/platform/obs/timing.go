package obs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID attaches a fresh request id unless ctx already carries one.
func WithRequestID(ctx context.Context) context.Context {
	if id := RequestID(ctx); id != "" {
		return ctx
	}
	return context.WithValue(ctx, RequestIDKey, uuid.NewString())
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of op when the returned func runs:
//
//	defer obs.Time(ctx, "kamion.ListShipments")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Duration("dur", time.Since(start)),
		}

		if errp != nil && *errp != nil {
			zap.L().Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		zap.L().Debug("operation done", fields...)
	}
}
