package client

import (
	"context"

	pb "github.com/dmitrijs2005/lockify/internal/proto"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email string, password []byte) (*pb.User, error)
	Login(ctx context.Context, email string, password []byte) (*pb.User, error)
	Logout()
	Token() string
	VerifyToken(ctx context.Context, token string) (*pb.VerifyTokenResponse, error)
	Profile(ctx context.Context) (*pb.User, error)
	ListUsers(ctx context.Context) ([]*pb.User, error)
	DeleteUser(ctx context.Context, id string) (*pb.User, error)
	DeleteUserByEmail(ctx context.Context, email string) (*pb.User, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}
