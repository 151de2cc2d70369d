package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userdash/pkg/clientip"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "remote addr", remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "cloudflare first", headers: map[string]string{"CF-Connecting-IP": "1.1.1.1", "X-Real-IP": "2.2.2.2"}, remote: "10.0.0.1:1", want: "1.1.1.1"},
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "bogus, 3.3.3.3, 4.4.4.4"}, remote: "10.0.0.1:1", want: "3.3.3.3"},
		{name: "invalid header falls through", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "10.0.0.2:1", want: "10.0.0.2"},
		{name: "ipv6 remote", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "remote without port", remote: "192.168.1.7", want: "192.168.1.7"},
		{name: "nothing valid", remote: "garbage", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.Resolve(r))
		})
	}
}

func TestResolveCustomHeaders(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1"
	r.Header.Set("X-Forwarded-For", "5.5.5.5")
	assert.Equal(t, "10.0.0.1", clientip.Resolve(r, "X-Client-IP"))
}

func TestMiddlewareAndExtractor(t *testing.T) {
	t.Parallel()

	var ctx context.Context
	h := clientip.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "8.8.8.8")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "8.8.8.8", clientip.FromContext(ctx))
	attr, ok := clientip.LoggerExtractor()(ctx)
	assert.True(t, ok)
	assert.Equal(t, "8.8.8.8", attr.Value.String())

	_, ok = clientip.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
