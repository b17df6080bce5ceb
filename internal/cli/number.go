package cli

import (
	"errors"
	"fmt"
	"os"

	"reddybook/pkg/numberclient"

	"github.com/spf13/cobra"
)

func newNumberCommand() *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "number",
		Short: "Read or change the number published by the number service",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:5000", "Number service base URL")

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the current number",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numberclient.New(baseURL).Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	var password string
	set := &cobra.Command{
		Use:   "set <number>",
		Short: "Replace the number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("ADMIN_PASSWORD")
			}
			if password == "" {
				return errors.New("--password or ADMIN_PASSWORD is required")
			}
			if err := numberclient.New(baseURL).Set(cmd.Context(), args[0], password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "updated")
			return nil
		},
	}
	set.Flags().StringVar(&password, "password", "", "Admin password (defaults to $ADMIN_PASSWORD)")

	cmd.AddCommand(get, set)
	return cmd
}
