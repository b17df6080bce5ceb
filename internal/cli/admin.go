package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"reddybook/internal/domain"
	"reddybook/internal/models"
	"reddybook/internal/repository"
	"reddybook/internal/service"
	"reddybook/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedAdminCommand() *cobra.Command {
	var email, password, role string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the first back-office admin",
		Long:  `Creates an identity with an admin directory row. An existing identity without a row is granted one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv("reddybook-seed")
			if err != nil {
				return err
			}
			defer e.close()
			if email == "" {
				email = e.cfg.Seed.Email
			}
			if password == "" {
				password = e.cfg.Seed.Password
			}
			if email == "" {
				return errors.New("--email (or REDDY_SEED_EMAIL) is required")
			}
			admin, err := seedAdmin(cmd.Context(), e, email, password, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s (%s) ready\n", email, admin.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (min 6 characters)")
	cmd.Flags().StringVar(&role, "role", domain.RoleAdmin, "admin or moderator")
	return cmd
}

func seedAdmin(ctx context.Context, e *env, email, password, role string) (*models.AdminUser, error) {
	identities := repository.NewIdentityRepository(e.db)
	admins := repository.NewAdminRepository(e.db)

	existing, err := identities.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	switch {
	case err == nil:
		if a, err := admins.GetByUserID(existing.ID); err == nil {
			return a, nil
		}
		if !domain.IsValidRole(role) {
			return nil, service.ErrInvalidRole
		}
		a := &models.AdminUser{UserID: existing.ID, Role: role}
		if err := admins.Create(a); err != nil {
			return nil, err
		}
		e.logger.Info("granted existing identity", zap.String("email", email))
		return a, nil
	case errors.Is(err, repository.ErrNotFound):
		idSvc := service.NewIdentityService(&e.cfg.JWT, identities, session.NewMemoryStore(), service.NewMailer(&e.cfg.Mail, e.cfg.Intake.Brand), e.logger)
		return service.NewAdminDirectoryService(idSvc, admins).Create(ctx, email, password, role, e.cfg.Server.SignInURL())
	default:
		return nil, err
	}
}

func newReconcileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "List identities that have no admin directory row",
		Long:  `Reports identities left behind when admin creation failed after sign-up. Nothing is changed; grant access with seed-admin or remove the identity by hand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv("reddybook-reconcile")
			if err != nil {
				return err
			}
			defer e.close()
			orphans, err := repository.NewAdminRepository(e.db).ListOrphanIdentities()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(orphans) == 0 {
				fmt.Fprintln(out, "no orphaned identities")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEMAIL\tCREATED")
			for _, o := range orphans {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", o.ID, o.Email, o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
}
