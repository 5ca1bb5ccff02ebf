package testutil

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"coreid/pkg/requestcontext"
)

// TestAdmin is the identity attached by WithAdmin when none is given.
var TestAdmin = requestcontext.AdminIdentity{
	ID:    uuid.MustParse("6f1c2a7e-3b1d-4c55-9a0e-1d2f3c4b5a69"),
	Email: "ops@coreid.test",
	Role:  "super_admin",
}

// WithAdmin attaches an authenticated admin to the request context, the way
// the admin middleware does for a verified session.
func WithAdmin(req *http.Request, admin ...requestcontext.AdminIdentity) *http.Request {
	a := TestAdmin
	if len(admin) > 0 {
		a = admin[0]
	}
	return req.WithContext(requestcontext.WithAdmin(req.Context(), a))
}

// AdminContext returns a background context carrying TestAdmin.
func AdminContext() context.Context {
	return requestcontext.WithAdmin(context.Background(), TestAdmin)
}
