package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/requestid"
	"github.com/dmitrymomot/userdash/pkg/validator"
)

// ErrorToastParams feeds the toast fragment shown for datastar requests.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorToast renders the fragment for datastar requests. When nil,
	// datastar requests get the JSON envelope too.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is the classification of an error for logging and display.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	detail, status := errorToDetail(err)
	info := ErrorInfo{
		StatusCode: status,
		Message:    detail.Message,
		Type:       "error",
		LogLevel:   slog.LevelError,
	}

	if verrs := validator.ExtractValidationErrors(err); !verrs.IsEmpty() {
		info.Message = verrs.Error()
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		info.Message = httpErr.Key
	}

	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler logs every error with request metadata and renders it as
// a toast patch for datastar requests or as a JSON envelope otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) && cfg.ErrorToast != nil {
			toast := cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				RequestID: reqID,
			})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.Error("failed to render error toast",
					logger.RequestID(reqID),
					logger.Error(renderErr),
					logger.Event("render_error_toast"),
				)
			}
			return
		}

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(reqID),
				logger.Error(renderErr),
			)
		}
	}
}
