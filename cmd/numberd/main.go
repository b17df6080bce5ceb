package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reddybook/config"
	"reddybook/internal/logger"
	"reddybook/internal/numbersvc"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadNumberService()
	l, err := logger.New(cfg.LogLevel, "json", "reddybook-numberd")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer l.Sync()

	if cfg.AdminPassword == "" {
		l.Warn("ADMIN_PASSWORD not set, updates will be rejected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := numbersvc.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		l.Fatal("mongo connection failed", zap.Error(err))
	}
	l.Info("mongo connected", zap.String("database", cfg.MongoDatabase))

	gin.SetMode(gin.ReleaseMode)
	store := numbersvc.NewMongoStore(client.Database(cfg.MongoDatabase))
	engine := numbersvc.NewRouter(numbersvc.NewHandler(store, cfg.AdminPassword, l), l)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: engine, ReadTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second}
	go func() {
		l.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("listen", zap.Error(err))
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("shutdown", zap.Error(err))
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		l.Error("mongo disconnect", zap.Error(err))
	}
}
