package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/lockify/internal/proto"
	"github.com/dmitrijs2005/lockify/internal/server/access"
	"github.com/dmitrijs2005/lockify/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func toPB(u models.PublicUser) *pb.User {
	return &pb.User{Id: u.ID, Email: u.Email, Role: u.Role}
}

// Register never returns the password digest.
func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{User: toPB(u.Public())}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{Token: result.Token, User: toPB(result.User)}, nil
}

func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.VerifyTokenResponse, error) {
	claims, err := s.auth.VerifyToken(ctx, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.VerifyTokenResponse{
		Valid:  true,
		UserId: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return resp, nil
}

// Profile returns the caller. Only reachable through the access interceptor.
func (s *GRPCServer) Profile(ctx context.Context, _ *emptypb.Empty) (*pb.ProfileResponse, error) {
	p, ok := access.PrincipalFromContext(ctx)
	if !ok {
		s.logger.Error(ctx, "profile called without principal")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ProfileResponse{User: &pb.User{Id: p.ID, Email: p.Email, Role: p.Role}}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *emptypb.Empty) (*pb.ListUsersResponse, error) {
	users := s.auth.ListUsers(ctx)

	resp := &pb.ListUsersResponse{Users: make([]*pb.User, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toPB(u))
	}
	return resp, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	u, err := s.auth.DeleteUser(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.DeleteUserResponse{User: toPB(*u)}, nil
}

func (s *GRPCServer) DeleteUserByEmail(ctx context.Context, req *pb.DeleteUserByEmailRequest) (*pb.DeleteUserResponse, error) {
	u, err := s.auth.DeleteUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.DeleteUserResponse{User: toPB(*u)}, nil
}

func (s *GRPCServer) DeleteAllUsers(ctx context.Context, _ *emptypb.Empty) (*pb.DeleteAllUsersResponse, error) {
	n := s.auth.DeleteAllUsers(ctx)
	return &pb.DeleteAllUsersResponse{Deleted: int64(n)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
