// Package delivery holds the transports that expose the billing usecases.
package delivery

import "context"

// Delivery is a server started by the application's run loop.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
