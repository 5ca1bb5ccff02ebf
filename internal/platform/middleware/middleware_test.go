package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/middleware/admin"
	"coreid/pkg/requestcontext"
)

type stubValidator struct {
	claims *SessionClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*SessionClaims, error) { return s.claims, s.err }

type stubDirectory struct {
	identity requestcontext.AdminIdentity
	err      error
}

func (s stubDirectory) LookupAdmin(context.Context, uuid.UUID) (requestcontext.AdminIdentity, error) {
	return s.identity, s.err
}

type RequireAdminSuite struct {
	suite.Suite
	logger  *slog.Logger
	machine *admin.TokenVerifier
	userID  uuid.UUID
	seen    requestcontext.AdminIdentity
	next    http.Handler
}

func (s *RequireAdminSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	hash, err := bcrypt.GenerateFromPassword([]byte("machine-token"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.machine = admin.NewTokenVerifier(string(hash))
	s.userID = uuid.New()
	s.seen = requestcontext.AdminIdentity{}
	s.next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.seen = requestcontext.Admin(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *RequireAdminSuite) serve(v SessionValidator, d AdminDirectory, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	r := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	for k, val := range headers {
		r.Header.Set(k, val)
	}
	w := httptest.NewRecorder()
	RequireAdmin(v, d, s.machine, s.logger)(s.next).ServeHTTP(w, r)
	var body map[string]any
	if w.Body.Len() > 0 {
		_ = json.NewDecoder(w.Body).Decode(&body)
	}
	return w, body
}

func (s *RequireAdminSuite) TestActiveAdminSessionPasses() {
	identity := requestcontext.AdminIdentity{ID: s.userID, Role: "admin"}
	w, _ := s.serve(
		stubValidator{claims: &SessionClaims{UserID: s.userID, Email: "ops@coreid.test"}},
		stubDirectory{identity: identity},
		map[string]string{"Authorization": "Bearer token"},
	)
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal(s.userID, s.seen.ID)
	s.Equal("ops@coreid.test", s.seen.Email)
}

func (s *RequireAdminSuite) TestMissingBearer() {
	w, body := s.serve(stubValidator{}, stubDirectory{}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("UNAUTHORIZED", body["error"])
}

func (s *RequireAdminSuite) TestInvalidToken() {
	w, _ := s.serve(
		stubValidator{err: dErrors.New(dErrors.CodeUnauthorized, "invalid token")},
		stubDirectory{},
		map[string]string{"Authorization": "Bearer bad"},
	)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.True(s.seen.IsZero())
}

func (s *RequireAdminSuite) TestNonAdminIsForbidden() {
	w, body := s.serve(
		stubValidator{claims: &SessionClaims{UserID: s.userID}},
		stubDirectory{err: dErrors.New(dErrors.CodeNotFound, "not an admin")},
		map[string]string{"Authorization": "Bearer token"},
	)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("FORBIDDEN", body["error"])
}

func (s *RequireAdminSuite) TestDirectoryFailureIsServerError() {
	w, _ := s.serve(
		stubValidator{claims: &SessionClaims{UserID: s.userID}},
		stubDirectory{err: errors.New("connection reset")},
		map[string]string{"Authorization": "Bearer token"},
	)
	s.GreaterOrEqual(w.Code, http.StatusInternalServerError)
}

func (s *RequireAdminSuite) TestMachineToken() {
	w, _ := s.serve(stubValidator{}, stubDirectory{}, map[string]string{admin.Header: "machine-token"})
	s.Equal(http.StatusNoContent, w.Code)
	s.True(s.seen.Machine)
}

func (s *RequireAdminSuite) TestWrongMachineTokenDoesNotFallBackToBearer() {
	w, _ := s.serve(
		stubValidator{claims: &SessionClaims{UserID: s.userID}},
		stubDirectory{identity: requestcontext.AdminIdentity{ID: s.userID}},
		map[string]string{admin.Header: "nope", "Authorization": "Bearer token"},
	)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestRequireAdminSuite(t *testing.T) {
	suite.Run(t, new(RequireAdminSuite))
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RequireRole("super_admin")(ok)

	serve := func(a *requestcontext.AdminIdentity) int {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		if a != nil {
			r = r.WithContext(requestcontext.WithAdmin(r.Context(), *a))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(nil))
	assert.Equal(t, http.StatusForbidden, serve(&requestcontext.AdminIdentity{ID: uuid.New(), Role: "moderator"}))
	assert.Equal(t, http.StatusOK, serve(&requestcontext.AdminIdentity{ID: uuid.New(), Role: "super_admin"}))
	assert.Equal(t, http.StatusOK, serve(&admin.MachineIdentity))
}

func TestRequestIDAndRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var seen string
	h := RequestID(Recovery(logger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
		panic("boom")
	})))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()
	var seen requestcontext.SessionUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.Session(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	serve := func(v SessionValidator, bearer string) int {
		r := httptest.NewRequest(http.MethodPost, "/invitations/t/accept", nil)
		if bearer != "" {
			r.Header.Set("Authorization", "Bearer "+bearer)
		}
		w := httptest.NewRecorder()
		RequireSession(v, logger)(next).ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(stubValidator{}, ""))
	assert.Equal(t, http.StatusUnauthorized, serve(stubValidator{err: errors.New("expired")}, "bad"))
	assert.True(t, seen.ID == uuid.Nil)

	code := serve(stubValidator{claims: &SessionClaims{UserID: userID, Email: "new@coreid.com"}}, "good")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Equal(t, userID, seen.ID)
	assert.Equal(t, "new@coreid.com", seen.Email)
}
