// Package auth is the seam to the external identity provider. The core only
// ever sees a stable user id (plus email for display); how sessions are
// issued and verified is the provider's business.
package auth

import (
	"errors"
	"net/http"
	"strings"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

var ErrNoSession = errors.New("no_session")

// Provider resolves the authenticated user for a request, or ErrNoSession.
type Provider interface {
	CurrentUser(r *http.Request) (*User, error)
}

// HeaderProvider trusts identity headers set by the fronting auth layer.
type HeaderProvider struct{}

func (HeaderProvider) CurrentUser(r *http.Request) (*User, error) {
	id := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if id == "" {
		return nil, ErrNoSession
	}
	return &User{ID: id, Email: strings.TrimSpace(r.Header.Get("X-User-Email"))}, nil
}
