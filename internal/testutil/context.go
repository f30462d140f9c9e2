package testutil

import (
	"context"

	"github.com/flexcart/flexcart/internal/types"
)

// SetupContext returns a context carrying a request id, matching what the
// request middleware attaches in production.
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}
