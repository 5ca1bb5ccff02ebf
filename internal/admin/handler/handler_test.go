package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"coreid/internal/admin/service"
	"coreid/pkg/testutil"
)

func TestMe(t *testing.T) {
	r := chi.NewRouter()
	New(service.New(nil), slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)

	rr := testutil.DoRequest(r, testutil.WithAdmin(testutil.NewRequest(t, http.MethodGet, "/admin/me")))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "role", "super_admin")
	testutil.AssertJSONContains(t, rr, "machine", false)
}

func TestMeWithoutAdmin(t *testing.T) {
	r := chi.NewRouter()
	New(service.New(nil), slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/admin/me"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}
