package profile_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/profile"
)

func serve(t *testing.T, req *http.Request, opts ...profile.Option) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	h := profile.Middleware(opts...)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = profile.FromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddlewareResolution(t *testing.T) {
	t.Parallel()

	t.Run("header wins over cookie", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(profile.DefaultHeader, "from-header")
		req.AddCookie(&http.Cookie{Name: profile.DefaultCookieName, Value: "from-cookie"})

		id, rec := serve(t, req)
		assert.Equal(t, "from-header", id)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("cookie when no header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: profile.DefaultCookieName, Value: "from-cookie"})

		id, _ := serve(t, req)
		assert.Equal(t, "from-cookie", id)
	})

	t.Run("issues a cookie for new visitors", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		id, rec := serve(t, req, profile.WithGenerator(func() string { return "fresh" }))
		assert.Equal(t, "fresh", id)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, profile.DefaultCookieName, cookies[0].Name)
		assert.Equal(t, "fresh", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("invalid header is ignored", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(profile.DefaultHeader, "../../etc/passwd")

		id, _ := serve(t, req, profile.WithGenerator(func() string { return "fresh" }))
		assert.Equal(t, "fresh", id)
	})
}

func TestValid(t *testing.T) {
	t.Parallel()
	assert.True(t, profile.Valid("0b6f3a52-1c0e-4a43-9b8e-2f1f0f3a9c11"))
	assert.False(t, profile.Valid(""))
	assert.False(t, profile.Valid("a:b"))
}
