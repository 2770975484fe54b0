// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, consumer).
// Serve blocks until the transport stops or fails; shutdown is driven by the
// application lifecycle, not by cancelling ctx.
type Delivery interface {
	Serve(ctx context.Context) error
}
