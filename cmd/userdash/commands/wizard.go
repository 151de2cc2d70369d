package commands

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/userdash/internal/tui"
	"github.com/dmitrymomot/userdash/pkg/draft"
	"github.com/dmitrymomot/userdash/pkg/environment"
	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

func wizardCmd() *cobra.Command {
	var profileID, logPath string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Add a user interactively; the draft survives restarts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			backend := appCfg.DraftBackend
			if backend == "" || backend == "memory" {
				backend = "file"
			}
			// The terminal owns stdout and stderr while the program runs.
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return err
			}
			defer logFile.Close()
			fileLog := logger.New(
				logger.WithEnvironment(environment.Parse(appCfg.Env), appCfg.ServiceName),
				logger.WithOutput(logFile),
			)

			drafts, err := openDraftBackend(ctx, backend, appCfg.DraftDir, fileLog)
			if err != nil {
				return err
			}
			defer drafts.close()

			w := wizard.New(ctx,
				wizard.WithDraftStore(draft.NewStore(drafts.backend, profileID, draft.WithLogger(fileLog))),
				wizard.WithLogger(fileLog),
			)
			submitter := wizard.NewSimulatedSubmitter(
				wizard.WithSubmitDelay(appCfg.SubmitDelay),
				wizard.WithSubmitLogger(fileLog),
			)

			_, err = tea.NewProgram(tui.New(ctx, w, submitter), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&logPath, "log-file", filepath.Join(os.TempDir(), "userdash-wizard.log"), "where to write logs while the wizard runs")
	cmd.Flags().StringVar(&profileID, "profile", "", "draft owner; empty uses the unprefixed keys")
	return cmd
}
