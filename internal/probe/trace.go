package probe

import (
	"context"

	"dhping/internal/target"
)

// Trace hooks into the stages of a probe. Nil fields are skipped.
type Trace struct {
	// Sent is called once the handshake has left the socket, before the
	// receive wait starts.
	Sent func(addr target.Address, n int)
}

type traceKey struct{}

// WithTrace returns a context whose probes report to t.
func WithTrace(ctx context.Context, t *Trace) context.Context {
	return context.WithValue(ctx, traceKey{}, t)
}

// ContextTrace returns the Trace attached to ctx, or nil.
func ContextTrace(ctx context.Context) *Trace {
	t, _ := ctx.Value(traceKey{}).(*Trace)
	return t
}
