package grpc

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/logging"
	pb "github.com/dmitrijs2005/lockify/internal/proto"
	"github.com/dmitrijs2005/lockify/internal/server/access"
	"github.com/dmitrijs2005/lockify/internal/server/auth"
	"github.com/dmitrijs2005/lockify/internal/server/services"
	"github.com/dmitrijs2005/lockify/internal/server/storage"
	"github.com/dmitrijs2005/lockify/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newServer(&fakeAuth{}, &fakeGate{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeAuth{}, &fakeGate{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startStack serves the real service stack over an in-memory listener.
func startStack(t *testing.T) (pb.AuthServiceClient, *grpc.ClientConn) {
	t.Helper()

	logger := logging.Nop{}
	store := users.NewStore(storage.NewFileSnapshotter(filepath.Join(t.TempDir(), "users.json")), logger)
	store.Load(context.Background())

	hasher := auth.NewArgon2Hasher(auth.Argon2Params{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLength: 16, KeyLength: 32})
	tokens := auth.NewTokenManager([]byte("test-secret-key-at-least-32-characters-long"), time.Hour)
	svc := services.NewAuthService(store, hasher, tokens, logger)
	gate := access.NewGate(tokens, svc.GetUser)

	srv := NewGRPCServer("bufnet", logger, svc, gate)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return pb.NewAuthServiceClient(conn), conn
}

func bearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerScheme+" "+token)
}

func TestEndToEnd_RegisterLoginProfile(t *testing.T) {
	client, _ := startStack(t)
	ctx := context.Background()

	reg, err := client.Register(ctx, &pb.RegisterRequest{Email: "a@x", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "1", reg.User.GetId())
	assert.Equal(t, "user", reg.User.GetRole())

	_, err = client.Login(ctx, &pb.LoginRequest{Email: "a@x", Password: "wrong"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := client.Login(ctx, &pb.LoginRequest{Email: "a@x", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, login.GetToken())

	var header metadata.MD
	profile, err := client.Profile(bearer(ctx, login.GetToken()), &emptypb.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "a@x", profile.User.GetEmail())
	assert.NotEmpty(t, header.Get(common.RequestIDHeaderName))

	verified, err := client.VerifyToken(ctx, &pb.VerifyTokenRequest{Token: login.GetToken()})
	require.NoError(t, err)
	assert.True(t, verified.Valid)
	assert.Equal(t, "1", verified.UserId)

	_, err = client.Profile(ctx, &emptypb.Empty{})
	assert.Equal(t, "missing token", status.Convert(err).Message())

	_, err = client.Profile(bearer(ctx, "junk"), &emptypb.Empty{})
	assert.Equal(t, "invalid token", status.Convert(err).Message())

	// deleting the user revokes the outstanding token
	_, err = client.DeleteUser(ctx, &pb.DeleteUserRequest{Id: "1"})
	require.NoError(t, err)
	_, err = client.Profile(bearer(ctx, login.GetToken()), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "user not found", status.Convert(err).Message())
}

func TestEndToEnd_Administration(t *testing.T) {
	client, conn := startStack(t)
	ctx := context.Background()

	for _, email := range []string{"a@x", "b@x", "c@x"} {
		_, err := client.Register(ctx, &pb.RegisterRequest{Email: email, Password: "pw"})
		require.NoError(t, err)
	}

	list, err := client.ListUsers(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.Users, 3)

	del, err := client.DeleteUserByEmail(ctx, &pb.DeleteUserByEmailRequest{Email: "b@x"})
	require.NoError(t, err)
	assert.Equal(t, "2", del.User.GetId())

	_, err = client.DeleteUser(ctx, &pb.DeleteUserRequest{Id: "2"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	all, err := client.DeleteAllUsers(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Deleted)

	again, err := client.DeleteAllUsers(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Deleted)

	_, err = client.Register(ctx, &pb.RegisterRequest{Email: "", Password: "pw"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	ping, err := client.Ping(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.AuthService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())
}
