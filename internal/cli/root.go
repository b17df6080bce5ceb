// Package cli holds the reddybook command tree.
package cli

import (
	"fmt"

	"reddybook/config"
	"reddybook/internal/database"
	"reddybook/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "reddybook",
		Short:         "Reddy Book lead intake and back office",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedAdminCommand(),
		newReconcileCommand(),
		newNumberCommand(),
	)
	return root
}

// env is what most commands need: configuration, a logger and the database.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func initEnv(service string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, service)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return &env{cfg: cfg, logger: log, db: db}, nil
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		sqlDB.Close()
	}
	e.logger.Sync()
}
