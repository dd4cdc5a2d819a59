// Package grpc exposes the identity flows over gRPC: the AuthService
// handlers, request logging and the access interceptor guarding protected
// methods.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/lockify/internal/logging"
	pb "github.com/dmitrijs2005/lockify/internal/proto"
	"github.com/dmitrijs2005/lockify/internal/server/auth"
	"github.com/dmitrijs2005/lockify/internal/server/models"
	"github.com/dmitrijs2005/lockify/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type authSvc interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	VerifyToken(ctx context.Context, token string) (*auth.Claims, error)
	ListUsers(ctx context.Context) []models.PublicUser
	DeleteUser(ctx context.Context, id string) (*models.PublicUser, error)
	DeleteUserByEmail(ctx context.Context, email string) (*models.PublicUser, error)
	DeleteAllUsers(ctx context.Context) int
}

type authorizer interface {
	Authorize(ctx context.Context, token string) (*models.Principal, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    authSvc
	gate    authorizer
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as authSvc, gate authorizer) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
		gate:    gate,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		healthSrv.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
