package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/userdash/pkg/binder"
	"github.com/dmitrymomot/userdash/pkg/validator"
)

// JSONResponse is the standard JSON envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta sets the meta object.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v in the data field. An error value is rendered as JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error, r.status = errorToDetail(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err into the error field with a matching status.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	r.body.Error, r.status = errorToDetail(err)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error) (*ErrorDetail, int) {
	if verrs := validator.ExtractValidationErrors(err); !verrs.IsEmpty() {
		return &ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Details: verrs.Map(),
		}, http.StatusUnprocessableEntity
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}, httpErr.Code
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}, http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath):
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}, http.StatusBadRequest
	}

	return &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError
}
