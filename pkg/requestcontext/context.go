// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets the values; services read them without importing net/http.
//
//	admin := requestcontext.Admin(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	adminKey       struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
	sessionKey     struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyAdmin       = adminKey{}
	ContextKeyClientIP    = clientIPKey{}
	ContextKeyUserAgent   = userAgentKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
	ContextKeySession     = sessionKey{}
)

// AdminIdentity is the authenticated console operator.
type AdminIdentity struct {
	ID    uuid.UUID
	Email string
	Role  string
	// Machine is set for X-Admin-Token callers, which have no profile row.
	Machine bool
}

// IsZero reports whether no admin is attached.
func (a AdminIdentity) IsZero() bool {
	return a.ID == uuid.Nil && !a.Machine
}

// Label is the actor string written to audit records.
func (a AdminIdentity) Label() string {
	switch {
	case a.Email != "":
		return a.Email
	case a.Machine:
		return "system"
	default:
		return "anonymous"
	}
}

// Admin retrieves the authenticated admin; the zero value when absent.
func Admin(ctx context.Context) AdminIdentity {
	if a, ok := ctx.Value(ContextKeyAdmin).(AdminIdentity); ok {
		return a
	}
	return AdminIdentity{}
}

// AdminID is a shortcut for Admin(ctx).ID.
func AdminID(ctx context.Context) uuid.UUID {
	return Admin(ctx).ID
}

// WithAdmin injects the authenticated admin.
func WithAdmin(ctx context.Context, admin AdminIdentity) context.Context {
	return context.WithValue(ctx, ContextKeyAdmin, admin)
}

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// UserAgent retrieves the User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// WithClientMetadata injects client IP and User-Agent into a context.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	return context.WithValue(ctx, ContextKeyUserAgent, userAgent)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() outside HTTP requests (CLI, workers, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}

// SessionUser is a verified Supabase session that need not belong to an
// admin, such as an invitee accepting an invitation.
type SessionUser struct {
	ID    uuid.UUID
	Email string
}

// Session retrieves the verified session user; the zero value when absent.
func Session(ctx context.Context) SessionUser {
	if u, ok := ctx.Value(ContextKeySession).(SessionUser); ok {
		return u
	}
	return SessionUser{}
}

// WithSession injects a verified session user.
func WithSession(ctx context.Context, u SessionUser) context.Context {
	return context.WithValue(ctx, ContextKeySession, u)
}
