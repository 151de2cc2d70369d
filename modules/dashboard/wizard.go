package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userdash/handler"
	"github.com/dmitrymomot/userdash/pkg/binder"
	"github.com/dmitrymomot/userdash/pkg/profile"
	"github.com/dmitrymomot/userdash/pkg/validator"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

const (
	SubmitSuccessMessage = "User added successfully!"
	SubmitFailureMessage = "Failed to add user. Please try again."
)

var (
	errNotOnReviewStep  = handler.NewHTTPError(http.StatusConflict, "wizard.not_on_review_step")
	errSubmitInProgress = handler.NewHTTPError(http.StatusConflict, "wizard.submit_in_progress")
	errSubmitFailed     = handler.NewHTTPError(http.StatusBadGateway, "wizard.submit_failed")
)

type WizardService struct {
	registry     *wizard.Registry
	submitter    wizard.Submitter
	toasts       Toaster
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewWizardService(
	registry *wizard.Registry,
	submitter wizard.Submitter,
	toasts Toaster,
	errorHandler handler.ErrorHandler[handler.Context],
) *WizardService {
	if errorHandler == nil {
		errorHandler = handler.DefaultErrorHandler[handler.Context]
	}
	return &WizardService{
		registry:     registry,
		submitter:    submitter,
		toasts:       toasts,
		errorHandler: errorHandler,
	}
}

func (s *WizardService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.show,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Delete("/", handler.Wrap(s.reset,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Patch("/record", handler.Wrap(s.update,
		handler.WithBinder[handler.Context, wizard.Patch](binder.JSON()),
		handler.WithErrorHandler[handler.Context, wizard.Patch](s.errorHandler),
	))
	r.Post("/advance", handler.Wrap(s.advance,
		handler.WithBinder[handler.Context, wizard.Patch](binder.JSON()),
		handler.WithErrorHandler[handler.Context, wizard.Patch](s.errorHandler),
	))
	r.Post("/retreat", handler.Wrap(s.retreat,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/submit", handler.Wrap(s.submit,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

// StepView describes one wizard page for progress display.
type StepView struct {
	Step    int    `json:"step"`
	Title   string `json:"title"`
	Valid   bool   `json:"valid"`
	Current bool   `json:"current"`
}

// WizardView is the JSON shape of a wizard snapshot. CanRetreat and
// CanAdvance are false while a submission holds the wizard.
type WizardView struct {
	Step       int           `json:"step"`
	Title      string        `json:"title"`
	Record     wizard.Record `json:"record"`
	Steps      []StepView    `json:"steps"`
	Submitting bool          `json:"submitting"`
	CanRetreat bool          `json:"can_retreat"`
	CanAdvance bool          `json:"can_advance"`
}

func newWizardView(ctx context.Context, w *wizard.Wizard, snap wizard.Snapshot) WizardView {
	steps := make([]StepView, 0, len(wizard.Steps))
	for _, st := range wizard.Steps {
		steps = append(steps, StepView{
			Step:    int(st),
			Title:   st.Title(),
			Valid:   wizard.StepValid(st, snap.Record),
			Current: st == snap.Step,
		})
	}
	return WizardView{
		Step:       int(snap.Step),
		Title:      snap.Step.Title(),
		Record:     snap.Record,
		Steps:      steps,
		Submitting: w.Submitting(),
		CanRetreat: w.CanRetreat(ctx),
		CanAdvance: w.CanAdvance(ctx),
	}
}

func (s *WizardService) mount(ctx handler.Context) *wizard.Wizard {
	return s.registry.Mount(ctx, profile.FromContext(ctx))
}

// respond renders the outcome of a wizard operation.
func respond(ctx handler.Context, w *wizard.Wizard, snap wizard.Snapshot, err error) handler.Response {
	switch {
	case err == nil:
		return handler.JSON(newWizardView(ctx, w, snap))
	case errors.Is(err, wizard.ErrSubmitInProgress):
		return handler.JSONError(errSubmitInProgress)
	case validator.IsValidationError(err):
		return handler.JSONError(err, handler.WithJSONMeta(map[string]any{
			"step": int(snap.Step),
		}))
	}
	return handler.JSONError(err)
}

func (s *WizardService) show(ctx handler.Context, _ struct{}) handler.Response {
	w := s.mount(ctx)
	return respond(ctx, w, w.Snapshot(), nil)
}

func (s *WizardService) update(ctx handler.Context, req wizard.Patch) handler.Response {
	w := s.mount(ctx)
	snap, err := w.UpdateRecord(ctx, req)
	return respond(ctx, w, snap, err)
}

// advance applies the optional partial, then moves on only when the
// current step's fields are valid.
func (s *WizardService) advance(ctx handler.Context, req wizard.Patch) handler.Response {
	w := s.mount(ctx)
	if !req.IsEmpty() {
		if snap, err := w.UpdateRecord(ctx, req); err != nil {
			return respond(ctx, w, snap, err)
		}
	}

	snap, err := w.TryAdvance(ctx)
	return respond(ctx, w, snap, err)
}

func (s *WizardService) retreat(ctx handler.Context, _ struct{}) handler.Response {
	w := s.mount(ctx)
	snap, err := w.Retreat(ctx)
	return respond(ctx, w, snap, err)
}

// reset clears the draft and unmounts the wizard; the next request mounts a
// fresh one.
func (s *WizardService) reset(ctx handler.Context, _ struct{}) handler.Response {
	profileID := profile.FromContext(ctx)
	w := s.mount(ctx)
	snap, err := w.Reset(ctx)
	if err == nil {
		s.registry.Unmount(profileID)
	}
	return respond(ctx, w, snap, err)
}

func (s *WizardService) submit(ctx handler.Context, _ struct{}) handler.Response {
	profileID := profile.FromContext(ctx)
	w := s.mount(ctx)

	err := w.Submit(ctx, s.submitter)
	switch {
	case err == nil:
		s.registry.Unmount(profileID)
		s.toasts.Success(ctx, profileID, SubmitSuccessMessage)
		return respond(ctx, w, w.Snapshot(), nil)
	case errors.Is(err, wizard.ErrSubmitInProgress):
		return handler.JSONError(errSubmitInProgress)
	case errors.Is(err, wizard.ErrNotOnReviewStep):
		return handler.JSONError(errNotOnReviewStep)
	case validator.IsValidationError(err):
		return handler.JSONError(err)
	default:
		s.toasts.Error(ctx, profileID, SubmitFailureMessage)
		return handler.JSONError(errSubmitFailed)
	}
}
