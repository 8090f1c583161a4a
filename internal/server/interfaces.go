package server

import "context"

// Server defines the lifecycle of the whole server process.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or a transport
// fails, then shuts every transport down.
type Server interface {
	RunServer() error

	// Shutdown gracefully stops every transport.
	Shutdown()
}

// transport is a single listener managed by [Server].
type transport interface {
	name() string
	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	shutdown(ctx context.Context) error
}
