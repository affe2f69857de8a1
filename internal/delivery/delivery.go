// Package delivery holds the process entry points (HTTP servers) started by the fx app.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
