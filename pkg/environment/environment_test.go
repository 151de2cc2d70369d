package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userdash/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"production":  environment.Production,
		"PROD":        environment.Production,
		" stage ":     environment.Staging,
		"staging":     environment.Staging,
		"development": environment.Development,
		"":            environment.Development,
		"qa":          environment.Development,
	}
	for in, want := range tests {
		assert.Equal(t, want, environment.Parse(in), in)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, environment.Development, environment.FromContext(context.Background()))
	ctx := environment.WithContext(context.Background(), environment.Production)
	assert.True(t, environment.FromContext(ctx).IsProduction())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	h := environment.Middleware(environment.Staging)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, environment.Staging, got)
}
