// Package dashboard is the HTTP surface of userdash: the user directory
// with search and local delete, the three-step add-user wizard and the
// per-profile toast feed.
//
// Every route runs behind request id and profile middleware. The profile id
// selects the caller's wizard draft, user list copy and toast stream.
//
//	r := chi.NewRouter()
//	r.Mount("/", dashboard.Router(dashboard.RouterOptions{
//		Users:  dashboard.NewUsersService(directorySvc, toasts, errHandler),
//		Wizard: dashboard.NewWizardService(registry, submitter, toasts, errHandler),
//		Toasts: dashboard.NewToastsService(toasts, deliverer, errHandler),
//		Health: httpserver.HealthHandler(log, checks...),
//	}))
package dashboard
