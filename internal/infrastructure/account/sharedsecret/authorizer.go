package sharedsecret

import (
	"context"
	"crypto/subtle"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Authorizer grants admin access to callers presenting the configured secret.
type Authorizer struct {
	secret []byte
}

func New(secret string) (*Authorizer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, crerr.New("shared secret is required")
	}
	return &Authorizer{secret: []byte(secret)}, nil
}

// Authorize compares in constant time. An empty credential never matches.
func (a *Authorizer) Authorize(_ context.Context, credential string) bool {
	if a == nil || credential == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), a.secret) == 1
}
