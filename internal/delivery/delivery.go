// Package delivery defines the contract every transport entry point of the
// dashboard satisfies.
package delivery

import "context"

// Delivery is a servable transport (the HTTP server). Serve blocks until
// the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
