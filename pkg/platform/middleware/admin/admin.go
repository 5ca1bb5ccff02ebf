// Package admin verifies the X-Admin-Token header used by automation that
// calls the console API without a Supabase session.
package admin

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"coreid/pkg/requestcontext"
)

// Header is the machine-token header.
const Header = "X-Admin-Token"

// MachineIdentity is attached for requests authenticated by the admin token.
var MachineIdentity = requestcontext.AdminIdentity{Role: "super_admin", Machine: true}

// TokenVerifier checks a presented admin token against a bcrypt hash.
type TokenVerifier struct {
	hash []byte
}

// NewTokenVerifier returns nil when hash is empty, which disables the header.
func NewTokenVerifier(hash string) *TokenVerifier {
	if hash == "" {
		return nil
	}
	return &TokenVerifier{hash: []byte(hash)}
}

// Verify reports whether token matches the configured hash.
func (v *TokenVerifier) Verify(token string) bool {
	if v == nil || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(token)) == nil
}

// FromRequest authenticates r by its X-Admin-Token header. ok is false when
// the header is absent or does not match.
func (v *TokenVerifier) FromRequest(r *http.Request) (*http.Request, bool) {
	if !v.Verify(r.Header.Get(Header)) {
		return r, false
	}
	return r.WithContext(requestcontext.WithAdmin(r.Context(), MachineIdentity)), true
}
