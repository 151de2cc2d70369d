package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/userdash/internal/tui"
	"github.com/dmitrymomot/userdash/pkg/config"
	"github.com/dmitrymomot/userdash/pkg/directory"
)

func usersCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Fetch the user directory and print it, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg directory.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			svc := directory.NewService(directory.NewClientFromConfig(cfg), directory.WithLogger(log))
			listing, err := svc.List(cmd.Context(), "cli", query)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.UsersTable(listing))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name or city (case-insensitive)")
	return cmd
}
