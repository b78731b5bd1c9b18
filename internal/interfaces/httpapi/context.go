package httpapi

import (
	"context"

	"github.com/riskibarqy/matchbook/internal/domain/validation"
)

type contextKey string

const payloadContextKey contextKey = "json_payload"

func withPayload(ctx context.Context, fields validation.Fields) context.Context {
	return context.WithValue(ctx, payloadContextKey, fields)
}

// payloadFromContext returns the parsed body, or an empty object when
// ParseJSONBody did not run for this route.
func payloadFromContext(ctx context.Context) validation.Fields {
	fields, ok := ctx.Value(payloadContextKey).(validation.Fields)
	if !ok || fields == nil {
		return validation.Fields{}
	}
	return fields
}
