// Package workers provides abstractions for managing the client's background
// workers (connectivity detector, sync coordinator) in a unified way.
package workers

import "context"

// Worker is the lifecycle contract for a background component. Start launches
// the worker's goroutines and returns immediately; Stop blocks until they
// have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
