package cli

import (
	"fmt"

	"reddybook/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv("reddybook-migrate")
			if err != nil {
				return err
			}
			defer e.close()
			for i := 0; i < steps; i++ {
				if err := database.RollbackLast(e.db); err != nil {
					return fmt.Errorf("rollback step %d: %w", i+1, err)
				}
			}
			e.logger.Info("rolled back migrations", zap.Int("steps", steps))
			return nil
		},
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv("reddybook-migrate")
			if err != nil {
				return err
			}
			defer e.close()
			if err := database.Migrate(e.db); err != nil {
				return err
			}
			e.logger.Info("migrations applied")
			return nil
		},
	}, down)
	return cmd
}
