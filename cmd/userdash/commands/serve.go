package commands

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/userdash/handler"
	"github.com/dmitrymomot/userdash/modules/dashboard"
	"github.com/dmitrymomot/userdash/pkg/config"
	"github.com/dmitrymomot/userdash/pkg/directory"
	"github.com/dmitrymomot/userdash/pkg/draft"
	"github.com/dmitrymomot/userdash/pkg/environment"
	"github.com/dmitrymomot/userdash/pkg/httpserver"
	"github.com/dmitrymomot/userdash/pkg/notifications"
	"github.com/dmitrymomot/userdash/pkg/profile"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	var (
		httpCfg httpserver.Config
		dirCfg  directory.Config
	)
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	if err := config.Load(&dirCfg); err != nil {
		return err
	}

	drafts, err := openDraftBackend(ctx, appCfg.DraftBackend, appCfg.DraftDir, log)
	if err != nil {
		return err
	}
	defer drafts.close()

	deliverer := notifications.NewBroadcastDeliverer(appCfg.ToastBuffer,
		notifications.WithBroadcastLogger(log))
	defer deliverer.Close()
	toasts := notifications.NewManager(
		notifications.NewMemoryStorage(appCfg.ToastHistory),
		deliverer,
		notifications.WithManagerLogger(log),
	)

	registry := wizard.NewRegistry(
		wizard.WithCapacity(appCfg.WizardCapacity),
		wizard.WithStoreFactory(draft.Factory(drafts.backend, draft.WithLogger(log))),
		wizard.WithRegistryLogger(log),
	)
	submitter := wizard.NewSimulatedSubmitter(
		wizard.WithSubmitDelay(appCfg.SubmitDelay),
		wizard.WithSubmitLogger(log),
	)
	users := directory.NewService(directory.NewClientFromConfig(dirCfg), directory.WithLogger(log))

	errHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorToast: dashboard.ErrorToast,
	})

	env := environment.Parse(appCfg.Env)
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(env))
	r.Mount("/", dashboard.Router(dashboard.RouterOptions{
		Users:   dashboard.NewUsersService(users, toasts, errHandler),
		Wizard:  dashboard.NewWizardService(registry, submitter, toasts, errHandler),
		Toasts:  dashboard.NewToastsService(toasts, deliverer, errHandler),
		Health:  httpserver.HealthHandler(log, drafts.checks...),
		Profile: []profile.Option{profile.WithSecureCookie(appCfg.SecureCookie || env.IsProduction())},

		TrustedIPHeaders: appCfg.TrustedIPHeaders,
	}))

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
