package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-blog/internal/config"
	myGRPC "github.com/MKhiriev/go-blog/internal/handler/grpc"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", g.address, err)
	}

	return g.server.Serve(listener)
}

// shutdown reports NOT_SERVING first, then waits for in-flight calls until
// ctx is done.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
