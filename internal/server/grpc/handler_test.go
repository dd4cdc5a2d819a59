package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/logging"
	pb "github.com/dmitrijs2005/lockify/internal/proto"
	"github.com/dmitrijs2005/lockify/internal/server/access"
	"github.com/dmitrijs2005/lockify/internal/server/auth"
	"github.com/dmitrijs2005/lockify/internal/server/models"
	"github.com/dmitrijs2005/lockify/internal/server/services"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ---- fakes ----

type fakeAuth struct {
	regResp *models.User
	regErr  error

	loginResp *services.LoginResult
	loginErr  error

	claims    *auth.Claims
	verifyErr error

	users []models.PublicUser

	deleted   *models.PublicUser
	deleteErr error

	cleared int
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeAuth) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	return f.claims, f.verifyErr
}
func (f *fakeAuth) ListUsers(ctx context.Context) []models.PublicUser { return f.users }
func (f *fakeAuth) DeleteUser(ctx context.Context, id string) (*models.PublicUser, error) {
	return f.deleted, f.deleteErr
}
func (f *fakeAuth) DeleteUserByEmail(ctx context.Context, email string) (*models.PublicUser, error) {
	return f.deleted, f.deleteErr
}
func (f *fakeAuth) DeleteAllUsers(ctx context.Context) int { return f.cleared }

type fakeGate struct {
	principal *models.Principal
	err       error
	gotToken  string
}

func (g *fakeGate) Authorize(ctx context.Context, token string) (*models.Principal, error) {
	g.gotToken = token
	return g.principal, g.err
}

// ---- helpers ----

func newServer(a authSvc, g authorizer) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, a, g)
}

func wantCode(t *testing.T, err error, code codes.Code, msg string) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("want %v, got %v (err=%v)", code, status.Code(err), err)
	}
	if msg != "" && status.Convert(err).Message() != msg {
		t.Fatalf("want message %q, got %q", msg, status.Convert(err).Message())
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeGate{})
	resp, err := s.Ping(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OmitsDigest(t *testing.T) {
	a := &fakeAuth{regResp: &models.User{ID: "1", Email: "a@x", PasswordDigest: "$argon2id$secret", Role: "user"}}
	s := newServer(a, &fakeGate{})

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "a@x", Password: "pw"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if !proto.Equal(resp.User, &pb.User{Id: "1", Email: "a@x", Role: "user"}) {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestRegister_Errors(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("%w: email and password are required", common.ErrorValidation), codes.InvalidArgument},
		{fmt.Errorf("error creating user: %w", common.ErrorAlreadyExists), codes.AlreadyExists},
		{errors.New("boom"), codes.Internal},
	}

	for _, c := range cases {
		s := newServer(&fakeAuth{regErr: c.err}, &fakeGate{})
		_, err := s.Register(context.Background(), &pb.RegisterRequest{})
		wantCode(t, err, c.code, "")
	}
}

func TestLogin_OK(t *testing.T) {
	a := &fakeAuth{loginResp: &services.LoginResult{
		Token: "T",
		User:  models.PublicUser{ID: "7", Email: "a@x", Role: "user"},
	}}
	s := newServer(a, &fakeGate{})

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetToken() != "T" || resp.User.GetId() != "7" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLogin_UnauthorizedAndInternal(t *testing.T) {
	s := newServer(&fakeAuth{loginErr: common.ErrInvalidCredentials}, &fakeGate{})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x", Password: "x"})
	wantCode(t, err, codes.Unauthenticated, "invalid credentials")

	s2 := newServer(&fakeAuth{loginErr: common.ErrorInternal}, &fakeGate{})
	_, err = s2.Login(context.Background(), &pb.LoginRequest{Email: "a@x", Password: "x"})
	wantCode(t, err, codes.Internal, "internal error")
}

func TestVerifyToken(t *testing.T) {
	exp := time.Unix(1_700_000_000, 0)
	a := &fakeAuth{claims: &auth.Claims{
		UserID: "3", Email: "c@x", Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	}}
	s := newServer(a, &fakeGate{})

	resp, err := s.VerifyToken(context.Background(), &pb.VerifyTokenRequest{Token: "t"})
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if !resp.Valid || resp.UserId != "3" || resp.Email != "c@x" || resp.ExpiresAt != exp.Unix() {
		t.Fatalf("unexpected response: %+v", resp)
	}

	s2 := newServer(&fakeAuth{verifyErr: common.ErrTokenExpired}, &fakeGate{})
	_, err = s2.VerifyToken(context.Background(), &pb.VerifyTokenRequest{Token: "t"})
	wantCode(t, err, codes.Unauthenticated, "invalid token")

	s3 := newServer(&fakeAuth{verifyErr: fmt.Errorf("%w: token is required", common.ErrorValidation)}, &fakeGate{})
	_, err = s3.VerifyToken(context.Background(), &pb.VerifyTokenRequest{})
	wantCode(t, err, codes.InvalidArgument, "")
}

func TestProfile(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeGate{})

	ctx := access.ContextWithPrincipal(context.Background(), &models.Principal{ID: "5", Email: "e@x", Role: "user"})
	resp, err := s.Profile(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if resp.User.GetId() != "5" || resp.User.GetEmail() != "e@x" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	_, err = s.Profile(context.Background(), &emptypb.Empty{})
	wantCode(t, err, codes.Internal, "")
}

func TestListUsers(t *testing.T) {
	a := &fakeAuth{users: []models.PublicUser{{ID: "1", Email: "a@x"}, {ID: "2", Email: "b@x"}}}
	s := newServer(a, &fakeGate{})

	resp, err := s.ListUsers(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(resp.Users) != 2 || resp.Users[0].GetId() != "1" || resp.Users[1].GetId() != "2" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}

	empty, err := newServer(&fakeAuth{}, &fakeGate{}).ListUsers(context.Background(), &emptypb.Empty{})
	if err != nil || empty.Users == nil || len(empty.Users) != 0 {
		t.Fatalf("want empty non-nil list, got %+v (err=%v)", empty, err)
	}
}

func TestDeleteUser(t *testing.T) {
	s := newServer(&fakeAuth{deleted: &models.PublicUser{ID: "9", Email: "z@x", Role: "user"}}, &fakeGate{})

	resp, err := s.DeleteUser(context.Background(), &pb.DeleteUserRequest{Id: "9"})
	if err != nil || resp.User.GetId() != "9" {
		t.Fatalf("DeleteUser: resp=%+v err=%v", resp, err)
	}

	resp, err = s.DeleteUserByEmail(context.Background(), &pb.DeleteUserByEmailRequest{Email: "z@x"})
	if err != nil || resp.User.GetEmail() != "z@x" {
		t.Fatalf("DeleteUserByEmail: resp=%+v err=%v", resp, err)
	}

	missing := newServer(&fakeAuth{deleteErr: common.ErrorNotFound}, &fakeGate{})
	_, err = missing.DeleteUser(context.Background(), &pb.DeleteUserRequest{Id: "404"})
	wantCode(t, err, codes.NotFound, "user not found")
	_, err = missing.DeleteUserByEmail(context.Background(), &pb.DeleteUserByEmailRequest{Email: "no@x"})
	wantCode(t, err, codes.NotFound, "user not found")
}

func TestDeleteAllUsers(t *testing.T) {
	s := newServer(&fakeAuth{cleared: 3}, &fakeGate{})
	resp, err := s.DeleteAllUsers(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("DeleteAllUsers error: %v", err)
	}
	if resp.Deleted != 3 {
		t.Fatalf("want 3 deleted, got %d", resp.Deleted)
	}
}
