// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport surface, e.g. an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
