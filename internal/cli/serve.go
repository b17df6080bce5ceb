package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reddybook/internal/database"
	"reddybook/internal/router"
	"reddybook/internal/service"
	"reddybook/internal/session"
	"reddybook/pkg/blob"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the intake and back-office API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "Apply pending migrations before serving")
	return cmd
}

func runServe(migrate bool) error {
	e, err := initEnv("reddybook-api")
	if err != nil {
		return err
	}
	defer e.close()
	cfg, log := e.cfg, e.logger

	if migrate {
		if err := database.Migrate(e.db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	ctx := context.Background()
	sessions, closeSessions, err := newSessionStore(ctx, e)
	if err != nil {
		return err
	}
	defer closeSessions()

	blobs, err := blob.NewStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("blob store: %w", err)
	}
	log.Info("blob store ready", zap.String("backend", cfg.Blob.Backend))

	limiter := router.NewLimiter(cfg)
	defer limiter.Stop()

	engine := router.Setup(cfg, router.Deps{
		DB:       e.db,
		Blobs:    blobs,
		Sessions: sessions,
		Mailer:   service.NewMailer(&cfg.Mail, cfg.Intake.Brand),
		Logger:   log,
		Limiter:  limiter,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newSessionStore uses redis when an address is configured, else process memory.
func newSessionStore(ctx context.Context, e *env) (session.Store, func(), error) {
	if e.cfg.Redis.Addr == "" {
		e.logger.Warn("redis.addr not set, sessions are kept in memory")
		return session.NewMemoryStore(), func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     e.cfg.Redis.Addr,
		Password: e.cfg.Redis.Password,
		DB:       e.cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	return session.NewRedisStore(client), func() { client.Close() }, nil
}
