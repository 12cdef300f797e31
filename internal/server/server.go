// Package server assembles the gRPC server: interceptors, the tales
// service, health and reflection
package server

import (
	"context"
	"log/slog"

	grpcinterceptors "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpcrecovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/handlers/tales/v1alpha1"
)

var talesServiceName = talesv1alpha1.TalesService_ServiceDesc.ServiceName

// Config holds what the server serves
type Config struct {
	Handler       talesv1alpha1.TalesServiceServer
	Authenticator v1alpha1.Authenticator
	Logger        *slog.Logger
	Tracing       bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Handler == nil {
		vb.RequiredField("Handler")
	}
	if c.Authenticator == nil {
		vb.RequiredField("Authenticator")
	}
	return vb.Build()
}

// Server is a gRPC server with its health reporter
type Server struct {
	*grpc.Server
	Health *health.Server
}

// New builds the server and registers every service
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loggingOpts := []grpclogging.Option{
		grpclogging.WithLogOnEvents(grpclogging.FinishCall),
	}
	recoveryOpts := []grpcrecovery.Option{
		grpcrecovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.ErrorContext(ctx, "recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}
	authFunc := bearerAuth(cfg.Authenticator)
	onlyTales := selector.MatchFunc(func(_ context.Context, call grpcinterceptors.CallMeta) bool {
		return call.Service == talesServiceName
	})

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpclogging.UnaryServerInterceptor(InterceptorLogger(logger), loggingOpts...),
			grpcrecovery.UnaryServerInterceptor(recoveryOpts...),
			selector.UnaryServerInterceptor(grpcauth.UnaryServerInterceptor(authFunc), onlyTales),
		),
		grpc.ChainStreamInterceptor(
			grpclogging.StreamServerInterceptor(InterceptorLogger(logger), loggingOpts...),
			grpcrecovery.StreamServerInterceptor(recoveryOpts...),
			selector.StreamServerInterceptor(grpcauth.StreamServerInterceptor(authFunc), onlyTales),
		),
	}
	if cfg.Tracing {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	srv := grpc.NewServer(opts...)
	talesv1alpha1.RegisterTalesServiceServer(srv, cfg.Handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(talesServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return &Server{Server: srv, Health: healthServer}, nil
}

// InterceptorLogger adapts slog to the go-grpc-middleware logging interface
func InterceptorLogger(l *slog.Logger) grpclogging.Logger {
	return grpclogging.LoggerFunc(func(ctx context.Context, lvl grpclogging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func bearerAuth(a v1alpha1.Authenticator) grpcauth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		authed, err := a.AuthFunc(ctx)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return authed, nil
	}
}
