package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userdash/handler"
	"github.com/dmitrymomot/userdash/pkg/binder"
	"github.com/dmitrymomot/userdash/pkg/directory"
	"github.com/dmitrymomot/userdash/pkg/profile"
)

// RefreshPath is returned to clients as the retry hint after a failed fetch.
const RefreshPath = "/users/refresh"

// Toaster is the notification side of the dashboard.
type Toaster interface {
	Success(ctx context.Context, profileID, msg string)
	Error(ctx context.Context, profileID, msg string)
}

type UsersService struct {
	directory    *directory.Service
	toasts       Toaster
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewUsersService(dir *directory.Service, toasts Toaster, errorHandler handler.ErrorHandler[handler.Context]) *UsersService {
	if errorHandler == nil {
		errorHandler = handler.DefaultErrorHandler[handler.Context]
	}
	return &UsersService{
		directory:    dir,
		toasts:       toasts,
		errorHandler: errorHandler,
	}
}

func (s *UsersService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.list,
		handler.WithBinder[handler.Context, ListUsersRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ListUsersRequest](s.errorHandler),
	))
	r.Post("/refresh", handler.Wrap(s.refresh,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Delete("/{id}", handler.Wrap(s.delete,
		handler.WithBinder[handler.Context, DeleteUserRequest](binder.Path()),
		handler.WithErrorHandler[handler.Context, DeleteUserRequest](s.errorHandler),
	))

	return r
}

type ListUsersRequest struct {
	Query string `query:"q"`
}

func (s *UsersService) list(ctx handler.Context, req ListUsersRequest) handler.Response {
	listing, err := s.directory.List(ctx, profile.FromContext(ctx), req.Query)
	if err != nil {
		return fetchFailed(err)
	}
	return listingResponse(listing)
}

func (s *UsersService) refresh(ctx handler.Context, _ struct{}) handler.Response {
	profileID := profile.FromContext(ctx)
	if err := s.directory.Refresh(ctx, profileID); err != nil {
		return fetchFailed(err)
	}
	listing, err := s.directory.List(ctx, profileID, "")
	if err != nil {
		return fetchFailed(err)
	}
	return listingResponse(listing)
}

type DeleteUserRequest struct {
	ID int `path:"id"`
}

func (s *UsersService) delete(ctx handler.Context, req DeleteUserRequest) handler.Response {
	profileID := profile.FromContext(ctx)

	user, err := s.directory.Delete(ctx, profileID, req.ID)
	switch {
	case errors.Is(err, directory.ErrUserNotFound):
		return handler.JSONError(handler.ErrNotFound)
	case err != nil:
		return fetchFailed(err)
	}

	s.toasts.Success(ctx, profileID, fmt.Sprintf("%s has been deleted successfully!", user.Name))
	return handler.JSON(user)
}

func listingResponse(l directory.Listing) handler.Response {
	return handler.JSON(l.Users, handler.WithJSONMeta(map[string]any{
		"query":    l.Query,
		"total":    l.Total,
		"shown":    l.Shown,
		"filtered": l.Filtered,
	}))
}

func fetchFailed(err error) handler.Response {
	return handler.JSONError(errors.Join(handler.ErrBadGateway, err), handler.WithJSONMeta(map[string]any{
		"message": directory.ErrFetchUsers.Error(),
		"retry":   RefreshPath,
	}))
}
