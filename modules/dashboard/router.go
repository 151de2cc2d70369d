package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userdash/pkg/clientip"
	"github.com/dmitrymomot/userdash/pkg/profile"
	"github.com/dmitrymomot/userdash/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the services to mount. Nil services are skipped.
type RouterOptions struct {
	Users  Mountable
	Wizard Mountable
	Toasts Mountable
	Health http.Handler

	// Profile configures profile resolution. Defaults to header, then
	// cookie, then a freshly issued cookie.
	Profile []profile.Option

	// TrustedIPHeaders overrides clientip.DefaultHeaders.
	TrustedIPHeaders []string
}

func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Health != nil {
		r.Method(http.MethodGet, "/healthz", opts.Health)
	}

	r.Group(func(r chi.Router) {
		r.Use(requestid.Middleware)
		r.Use(clientip.Middleware(opts.TrustedIPHeaders...))
		r.Use(profile.Middleware(opts.Profile...))

		if opts.Users != nil {
			r.Mount("/users", opts.Users.Handle())
		}
		if opts.Wizard != nil {
			r.Mount("/wizard", opts.Wizard.Handle())
		}
		if opts.Toasts != nil {
			r.Mount("/toasts", opts.Toasts.Handle())
		}
	})

	return r
}
