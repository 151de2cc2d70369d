package profile

import (
	"net/http"
	"regexp"
	"time"
)

const (
	DefaultHeader     = "X-Profile-ID"
	DefaultCookieName = "userdash_profile"
	DefaultCookieTTL  = 365 * 24 * time.Hour
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

// Valid reports whether id is an acceptable profile id.
func Valid(id string) bool {
	return validID.MatchString(id)
}

// Transport reads and writes the profile id on HTTP messages.
type Transport interface {
	// ID returns ErrProfileNotFound when the request carries no valid id.
	ID(r *http.Request) (string, error)
	SetID(w http.ResponseWriter, id string)
}

// HeaderTransport reads the id from a request header and echoes it back.
type HeaderTransport struct {
	name string
}

func NewHeaderTransport(name string) *HeaderTransport {
	return &HeaderTransport{name: name}
}

func (t *HeaderTransport) ID(r *http.Request) (string, error) {
	id := r.Header.Get(t.name)
	if !Valid(id) {
		return "", ErrProfileNotFound
	}
	return id, nil
}

func (t *HeaderTransport) SetID(w http.ResponseWriter, id string) {
	w.Header().Set(t.name, id)
}

// CookieTransport keeps the id in a plain HttpOnly cookie.
type CookieTransport struct {
	name   string
	ttl    time.Duration
	secure bool
}

func NewCookieTransport(name string, ttl time.Duration, secure bool) *CookieTransport {
	return &CookieTransport{name: name, ttl: ttl, secure: secure}
}

func (t *CookieTransport) ID(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || !Valid(c.Value) {
		return "", ErrProfileNotFound
	}
	return c.Value, nil
}

func (t *CookieTransport) SetID(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(t.ttl.Seconds()),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// CompositeTransport tries transports in order and writes through all of them.
type CompositeTransport struct {
	transports []Transport
}

func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

func (t *CompositeTransport) ID(r *http.Request) (string, error) {
	for _, tr := range t.transports {
		if id, err := tr.ID(r); err == nil {
			return id, nil
		}
	}
	return "", ErrProfileNotFound
}

func (t *CompositeTransport) SetID(w http.ResponseWriter, id string) {
	for _, tr := range t.transports {
		tr.SetID(w, id)
	}
}
