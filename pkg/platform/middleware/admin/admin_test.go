package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"coreid/pkg/requestcontext"
)

func TestTokenVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	v := NewTokenVerifier(string(hash))

	t.Run("matching token attaches machine identity", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(Header, "s3cret")
		out, ok := v.FromRequest(r)
		require.True(t, ok)
		admin := requestcontext.Admin(out.Context())
		assert.True(t, admin.Machine)
		assert.Equal(t, "system", admin.Label())
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(Header, "guess")
		_, ok := v.FromRequest(r)
		assert.False(t, ok)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		_, ok := v.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, ok)
	})

	t.Run("unconfigured verifier rejects everything", func(t *testing.T) {
		var none *TokenVerifier = NewTokenVerifier("")
		assert.Nil(t, none)
		assert.False(t, none.Verify("s3cret"))
	})
}
