package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/handler"
	"github.com/dmitrymomot/userdash/pkg/binder"
	"github.com/dmitrymomot/userdash/pkg/validator"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	return rec
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data with meta", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON([]string{"a"}, handler.WithJSONMeta(map[string]any{"total": 1})))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":["a"],"meta":{"total":1}}`, rec.Body.String())
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON(map[string]int{"id": 1}, handler.WithJSONStatus(http.StatusCreated)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON(handler.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, rec.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	verrs.Add(validator.ValidationError{Field: "name", Message: "Name must be at least 2 characters"})
	verrs.Add(validator.ValidationError{Field: "email", Message: "Please enter a valid email address"})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "validation errors", err: verrs, status: http.StatusUnprocessableEntity, code: "validation_error"},
		{name: "wrapped validation errors", err: fmt.Errorf("advance: %w", verrs), status: http.StatusUnprocessableEntity, code: "validation_error"},
		{name: "http error", err: handler.ErrBadGateway, status: http.StatusBadGateway, code: "bad_gateway"},
		{name: "joined http error", err: errors.Join(handler.ErrConflict, errors.New("busy")), status: http.StatusConflict, code: "conflict"},
		{name: "bad json", err: fmt.Errorf("%w: eof", binder.ErrFailedToParseJSON), status: http.StatusBadRequest, code: "bad_request"},
		{name: "media type", err: fmt.Errorf("%w: text/plain", binder.ErrUnsupportedMediaType), status: http.StatusUnsupportedMediaType, code: "unsupported_media_type"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "internal_server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := render(t, handler.JSONError(tt.err))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeEnvelope(t, rec).Error.Code)
		})
	}

	t.Run("validation details per field", func(t *testing.T) {
		t.Parallel()
		body := decodeEnvelope(t, render(t, handler.JSONError(verrs)))
		assert.Equal(t, []string{"Name must be at least 2 characters"}, body.Error.Details["name"])
		assert.Equal(t, []string{"Please enter a valid email address"}, body.Error.Details["email"])
	})

	t.Run("meta option", func(t *testing.T) {
		t.Parallel()
		body := decodeEnvelope(t, render(t, handler.JSONError(handler.ErrBadGateway,
			handler.WithJSONMeta(map[string]any{"retry": "/users/refresh"}))))
		assert.Equal(t, "/users/refresh", body.Meta["retry"])
	})
}
