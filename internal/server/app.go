// Package server wires the identity service together: configuration, the
// snapshot backend, the user store, credential primitives, the access gate
// and the gRPC endpoint. It also handles graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/logging"
	"github.com/dmitrijs2005/lockify/internal/server/access"
	"github.com/dmitrijs2005/lockify/internal/server/auth"
	"github.com/dmitrijs2005/lockify/internal/server/config"
	"github.com/dmitrijs2005/lockify/internal/server/services"
	"github.com/dmitrijs2005/lockify/internal/server/storage"
	"github.com/dmitrijs2005/lockify/internal/server/users"

	gs "github.com/dmitrijs2005/lockify/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	server       *gs.GRPCServer
	closeStorage func() error
}

// NewApp builds every component from c. The user store is loaded from the
// configured backend before the endpoint starts.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, c.LogFormat, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	secret := c.SecretKey
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key generation error: %w", err)
		}
		secret = s
		logger.Warn(ctx, "no secret key configured, using a random one; tokens will not survive a restart")
	}

	snapshots, closeStorage, err := storage.Open(ctx, storage.Options{
		Type: c.StorageType,
		File: c.UsersFile,
		DSN:  c.DatabaseDSN,
		S3: storage.S3Config{
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			Key:          c.S3Key,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	logger.Info(ctx, "storage opened", "type", c.StorageType)

	var opts []users.Option
	if c.UniqueEmails {
		opts = append(opts, users.WithUniqueEmails())
	}
	store := users.NewStore(snapshots, logger, opts...)
	store.Load(ctx)

	hasher := auth.NewArgon2Hasher(auth.DefaultArgon2Params)
	tokens := auth.NewTokenManager([]byte(secret), c.AccessTokenValidityDuration)

	svc := services.NewAuthService(store, hasher, tokens, logger)
	gate := access.NewGate(tokens, svc.GetUser)

	return &App{
		config:       c,
		logger:       logger,
		server:       gs.NewGRPCServer(c.EndpointAddrGRPC, logger, svc, gate),
		closeStorage: closeStorage,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.closeStorage(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
