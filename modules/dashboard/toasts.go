package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userdash/handler"
	"github.com/dmitrymomot/userdash/pkg/binder"
	"github.com/dmitrymomot/userdash/pkg/notifications"
	"github.com/dmitrymomot/userdash/pkg/profile"
)

const (
	// ToastTarget is the element toasts are prepended into.
	ToastTarget = "#toast-container"

	defaultRecentLimit = 20
)

type ToastsService struct {
	manager      *notifications.Manager
	stream       *notifications.BroadcastDeliverer
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewToastsService(
	manager *notifications.Manager,
	stream *notifications.BroadcastDeliverer,
	errorHandler handler.ErrorHandler[handler.Context],
) *ToastsService {
	if errorHandler == nil {
		errorHandler = handler.DefaultErrorHandler[handler.Context]
	}
	return &ToastsService{
		manager:      manager,
		stream:       stream,
		errorHandler: errorHandler,
	}
}

func (s *ToastsService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.recent,
		handler.WithBinder[handler.Context, RecentToastsRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, RecentToastsRequest](s.errorHandler),
	))
	r.Get("/stream", handler.Wrap(s.live,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

type RecentToastsRequest struct {
	Limit int `query:"limit"`
}

func (s *ToastsService) recent(ctx handler.Context, req RecentToastsRequest) handler.Response {
	limit := req.Limit
	if limit <= 0 || limit > defaultRecentLimit {
		limit = defaultRecentLimit
	}

	toasts, err := s.manager.Recent(ctx, profile.FromContext(ctx), limit)
	if err != nil {
		return handler.JSONError(err)
	}
	if toasts == nil {
		toasts = []notifications.Toast{}
	}
	return handler.JSON(toasts)
}

// live pushes each new toast for the caller's profile as a fragment
// prepended to the toast container, until the client disconnects.
func (s *ToastsService) live(ctx handler.Context, _ struct{}) handler.Response {
	return handler.SSE(func(stream handler.StreamContext) error {
		sub := s.stream.Subscribe(stream, profile.FromContext(stream))
		defer sub.Close()

		for {
			select {
			case <-stream.Done():
				return nil
			case msg, ok := <-sub.Receive():
				if !ok {
					return nil
				}
				if err := stream.SendComponent(ToastFragment(msg.Data),
					handler.WithTarget(ToastTarget),
					handler.WithPatchMode(handler.PatchPrepend),
				); err != nil {
					return err
				}
			}
		}
	})
}

var _ Toaster = (*notifications.Manager)(nil)
