package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"

	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/httputil"
	"coreid/pkg/platform/middleware/admin"
	"coreid/pkg/requestcontext"
)

// SessionClaims are the verified facts of a session token.
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
}

// SessionValidator verifies bearer tokens.
type SessionValidator interface {
	ValidateToken(tokenString string) (*SessionClaims, error)
}

// AdminDirectory resolves a verified user to an active console admin.
// It returns a NOT_FOUND error for users without an active admin record.
type AdminDirectory interface {
	LookupAdmin(ctx context.Context, userID uuid.UUID) (requestcontext.AdminIdentity, error)
}

// RequireAdmin admits requests carrying either a valid X-Admin-Token or a
// bearer session that belongs to an active admin.
func RequireAdmin(validator SessionValidator, directory AdminDirectory, machine *admin.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			if r.Header.Get(admin.Header) != "" {
				if authed, ok := machine.FromRequest(r); ok {
					next.ServeHTTP(w, authed)
					return
				}
				logger.WarnContext(ctx, "admin token mismatch", "request_id", requestID)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid admin token"))
				return
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token", "request_id", requestID)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}
			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token", "request_id", requestID, "error", err)
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			identity, err := directory.LookupAdmin(ctx, claims.UserID)
			if err != nil {
				if dErrors.HasCode(err, dErrors.CodeNotFound) {
					logger.WarnContext(ctx, "non-admin session rejected", "request_id", requestID, "user_id", claims.UserID)
					httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin access required"))
					return
				}
				httputil.LogAndWriteError(ctx, w, logger, "admin lookup failed", err, "request_id", requestID)
				return
			}
			if identity.Email == "" {
				identity.Email = claims.Email
			}
			next.ServeHTTP(w, r.WithContext(requestcontext.WithAdmin(ctx, identity)))
		})
	}
}

// RequireSession admits any request with a valid bearer session and
// records the session user. Used by routes open to non-admins.
func RequireSession(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}
			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "invalid session token", "request_id", requestcontext.RequestID(ctx), "error", err)
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}
			ctx = requestcontext.WithSession(ctx, requestcontext.SessionUser{ID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole restricts a route to admins holding one of roles. Machine
// callers always pass.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a := requestcontext.Admin(r.Context())
			if a.IsZero() {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
				return
			}
			if !a.Machine && !slices.Contains(roles, a.Role) {
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
