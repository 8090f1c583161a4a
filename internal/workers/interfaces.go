// Package workers runs the client's background jobs next to the terminal UI.
//
// Every [Worker] runs in its own goroutine so the UI can render the persisted
// state at once; results are delivered over a channel the UI listens to.
package workers

import "context"

// Worker is a single background job.
type Worker interface {
	// Name identifies the worker in logs and results.
	Name() string

	// Run does the work and returns when it is finished or ctx is done.
	Run(ctx context.Context) error
}

// Result is the outcome of one [Worker.Run].
type Result struct {
	Worker string
	Err    error
}
