// Package commands wires the userdash command line.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/userdash/pkg/clientip"
	"github.com/dmitrymomot/userdash/pkg/config"
	"github.com/dmitrymomot/userdash/pkg/environment"
	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/profile"
	"github.com/dmitrymomot/userdash/pkg/requestid"
)

var (
	appCfg AppConfig
	log    *slog.Logger

	backendFlag string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "userdash",
		Short:         "User directory dashboard with a three-step add-user wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&appCfg); err != nil {
				return err
			}
			if backendFlag != "" {
				appCfg.DraftBackend = backendFlag
			}

			env := environment.Parse(appCfg.Env)
			log = logger.New(
				logger.WithEnvironment(env, appCfg.ServiceName),
				logger.WithOutput(os.Stderr),
				logger.WithContextExtractors(
					requestid.LoggerExtractor(),
					profile.LoggerExtractor(),
					clientip.LoggerExtractor(),
				),
			)
			slog.SetDefault(log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&backendFlag, "backend", "", "draft backend: memory, file, redis, mongo, postgres (default $DRAFT_BACKEND)")

	root.AddCommand(serveCmd(), usersCmd(), wizardCmd())

	if err := root.Execute(); err != nil {
		if log != nil {
			log.Error("command failed", logger.Error(err))
		} else {
			root.PrintErrln("Error:", err)
		}
		return err
	}
	return nil
}
