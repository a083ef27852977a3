// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts
// workers in order and stops them in reverse order.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: long-running work is expected to happen in
// goroutines owned by the worker. Stop must block until that work has
// finished and must be safe to call when the worker was never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // cancel and wait
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
