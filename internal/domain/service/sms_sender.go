package service

import "context"

// SMSSender defines the interface for dispatching a single text message
// through the configured provider. The originating number is part of the
// sender's configuration, not the call.
type SMSSender interface {
	// Send delivers body to the given number and returns the provider's
	// delivery identifier.
	Send(ctx context.Context, to string, body string) (deliveryID string, err error)
}
