// Package server wires and runs the blog server transports.
//
// It owns the HTTP and gRPC server lifecycles: startup, signal handling and
// graceful shutdown of every enabled transport.
package server
