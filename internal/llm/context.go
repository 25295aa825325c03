package llm

import "context"

type ctxKey int

const (
	purposeCtxKey ctxKey = iota
	requestIDCtxKey
)

// UnknownPurpose is reported for calls made without WithPurpose.
const UnknownPurpose = "unknown"

// WithPurpose labels every LLM call made with ctx, e.g. "quiz-gen".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or UnknownPurpose.
func PurposeFrom(ctx context.Context) string {
	if p, _ := ctx.Value(purposeCtxKey).(string); p != "" {
		return p
	}
	return UnknownPurpose
}

// WithRequestID ties LLM calls made with ctx to the HTTP request that
// caused them. The id ends up in the request event log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

// RequestIDFrom returns the id set by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}
