package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/shhac/gradebook/internal/command"
)

// Server exposes the document commands over gRPC for out-of-process
// frontends. It adds no locking: concurrent SaveData calls race and the last
// one to finish wins.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	logger     *slog.Logger
}

// NewServer creates a bridge server backed by commands. The document service,
// the standard health service and server reflection are registered.
func NewServer(commands *command.Handler, logger *slog.Logger) *Server {
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))
	RegisterDocumentServiceServer(gs, &documentService{commands: commands})

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(gs)

	return &Server{
		grpcServer: gs,
		health:     hs,
		logger:     logger,
	}
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("document bridge listening", slog.String("addr", lis.Addr().String()))
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve document bridge: %w", err)
	}
	return nil
}

// ErrNotLoopback is returned by Start for addresses reachable from other hosts.
var ErrNotLoopback = errors.New("bridge address is not a loopback address")

// Start listens on addr and serves in the background. It returns the bound
// address, which differs from addr when addr uses port 0. The bridge has no
// authentication, so addr must be a loopback address or localhost.
func (s *Server) Start(addr string) (net.Addr, error) {
	if err := CheckLoopback(addr); err != nil {
		return nil, err
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	go func() {
		if err := s.Serve(lis); err != nil {
			s.logger.Error("document bridge stopped", slog.Any("error", err))
		}
	}()

	return lis.Addr(), nil
}

// Stop marks the server not serving and drains in-flight calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
	s.logger.Info("document bridge stopped")
}

// CheckLoopback rejects host:port addresses whose host is not localhost or a
// loopback IP. An empty host binds every interface and is rejected too.
func CheckLoopback(addr string) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("parse bridge address %q: %w", addr, err)
	}
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrNotLoopback, addr)
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("bridge call",
			slog.String("method", info.FullMethod),
			slog.String("code", status.Code(err).String()),
			slog.Duration("duration", time.Since(start)))
		return resp, err
	}
}
