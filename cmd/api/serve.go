package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/config"
	adminauth "github.com/folio-labs/portfolio-backend/internal/admin/auth"
	"github.com/folio-labs/portfolio-backend/internal/bootstrap"
	"github.com/folio-labs/portfolio-backend/internal/demos/analyzer"
	"github.com/folio-labs/portfolio-backend/internal/logging"
	"github.com/folio-labs/portfolio-backend/internal/notify"
	"github.com/folio-labs/portfolio-backend/internal/storage/postgres"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secret, err := signingSecret(cfg, logger)
	if err != nil {
		return err
	}
	verifier, err := buildVerifier(ctx, cfg)
	if err != nil {
		return err
	}

	runner := notify.NewDetached(logger, cfg.Server.DetachedTimeout)
	deps := bootstrap.RouterDeps{
		ServiceName:      cfg.App.ServiceName,
		Version:          cfg.App.Version,
		Production:       cfg.App.IsProduction(),
		CORSOrigins:      cfg.Server.CORSOrigins,
		TrustedProxies:   cfg.Server.TrustedProxies,
		Mailer:           notify.NewMailer(cfg.Mail, logger),
		Runner:           runner,
		Verifier:         verifier,
		Issuer:           adminauth.NewIssuer(secret, cfg.Auth.TokenTTL),
		RateLimit:        cfg.Server.RateLimit,
		RateWindow:       cfg.Server.RateWindow,
		LoginRateLimit:   cfg.Server.LoginRateLimit,
		LoginRateWindow:  cfg.Server.LoginRateWindow,
		MaxDocumentBytes: cfg.Server.MaxDocumentBytes,
	}

	closeStore := openStore(ctx, cfg, logger, &deps)
	defer closeStore()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Warn("redis unavailable, rate limiting per process", zap.Error(err))
	} else if rdb != nil {
		defer func() { _ = rdb.Close() }()
		deps.Redis = rdb
	}

	if cfg.AI.APIKey != "" {
		a, err := analyzer.NewGeminiAnalyzer(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)
		if err != nil {
			logger.Warn("resume analyzer disabled", zap.Error(err))
		} else {
			deps.Analyzer = a
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, resume analyzer disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           bootstrap.BuildRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := runner.Wait(shutdownCtx); err != nil {
		logger.Warn("background tasks still running at exit", zap.Error(err))
	}
	return nil
}

// openStore connects both database handles and applies the schema. Any
// failure leaves deps without a store so the API answers 503.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger, deps *bootstrap.RouterDeps) func() {
	dsn := postgres.DSN(&cfg.Database)
	if dsn == "" {
		logger.Warn("no database configured, serving in degraded mode")
		return func() {}
	}
	opts := bootstrap.DBOptions{DSN: dsn, MaxConns: cfg.Database.MaxConns, ConnectTO: cfg.Database.ConnectTO}

	pool, err := bootstrap.OpenDB(ctx, opts)
	if err != nil {
		logger.Error("database unavailable, serving in degraded mode", zap.Error(err))
		return func() {}
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		logger.Error("schema migration failed, serving in degraded mode", zap.Error(err))
		pool.Close()
		return func() {}
	}

	sqlDB, err := bootstrap.OpenSQL(ctx, opts)
	if err != nil {
		logger.Error("database unavailable, serving in degraded mode", zap.Error(err))
		pool.Close()
		return func() {}
	}

	deps.DB = pool
	deps.SQL = sqlDB
	return func() {
		_ = sqlDB.Close()
		pool.Close()
	}
}

func signingSecret(cfg *config.Config, logger *zap.Logger) ([]byte, error) {
	if cfg.Auth.JWTSecret != "" {
		return []byte(cfg.Auth.JWTSecret), nil
	}
	logger.Warn("AUTH_JWT_SECRET not set, using a random per-process secret; admin sessions end on restart")
	return adminauth.RandomSecret()
}

func buildVerifier(ctx context.Context, cfg *config.Config) (adminauth.Verifier, error) {
	if cfg.Auth.Provider == "firebase" {
		client, err := adminauth.InitializeFirebase(ctx, cfg.Auth.FirebaseCredentialsPath)
		if err != nil {
			return nil, err
		}
		return adminauth.NewFirebaseVerifier(client, cfg.Auth.AdminUsername), nil
	}
	return adminauth.NewPasswordVerifier(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash), nil
}
