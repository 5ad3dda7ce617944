// Package delivery defines the contract every transport entrypoint
// implements so main can start them uniformly.
package delivery

import (
	"context"
)

// Delivery is a long-running transport server (HTTP today).
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
