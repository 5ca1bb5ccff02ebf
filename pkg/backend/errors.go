package backend

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
)

// Postgres and PostgREST codes with a dedicated user-facing message.
const (
	CodeNoRows          = "PGRST116"
	CodeUniqueViolation = "23505"
	CodeForeignKey      = "23503"
	CodeUndefinedTable  = "42P01"
	CodeInsufficientACL = "42501"
)

const (
	MsgNotFound          = "The requested record was not found."
	MsgAlreadyExists     = "This record already exists."
	MsgReferenced        = "Cannot delete: this item is referenced elsewhere."
	MsgTableDoesNotExist = "Database table does not exist. Please contact support."
	MsgPermissionDenied  = "Permission denied for this action."
	MsgDatabaseError     = "A database error occurred."
	MsgUnexpected        = "An unexpected error occurred."
	MsgRequestCancelled  = "The request was cancelled."
)

type pgMapping struct {
	code    dErrors.Code
	status  int
	message string
}

var pgCodes = map[string]pgMapping{
	CodeUniqueViolation: {dErrors.CodeConflict, http.StatusConflict, MsgAlreadyExists},
	CodeForeignKey:      {dErrors.CodeConflict, http.StatusConflict, MsgReferenced},
	CodeUndefinedTable:  {dErrors.CodeServer, http.StatusInternalServerError, MsgTableDoesNotExist},
	CodeInsufficientACL: {dErrors.CodeAuth, http.StatusForbidden, MsgPermissionDenied},
}

// Message returns the user-facing text for a backend code, falling back to
// the generic database message.
func Message(backendCode string) string {
	if m, ok := pgCodes[backendCode]; ok {
		return m.message
	}
	if backendCode == CodeNoRows {
		return MsgNotFound
	}
	return MsgDatabaseError
}

// HTTPError is a non-2xx response from a backend HTTP endpoint.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// HandleError wraps any backend failure into *dErrors.Error. Errors that are
// already wrapped pass through unchanged.
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	if de, ok := dErrors.As(err); ok {
		return de
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, MsgNotFound).WithBackendCode(CodeNoRows)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromSQLState(err, pgErr.Code, pgErr.Message)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fromSQLState(err, string(pqErr.Code), pqErr.Message)
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = MsgUnexpected
		}
		return dErrors.Wrap(err, dErrors.CodeForStatus(httpErr.StatusCode), msg).
			WithStatus(httpErr.StatusCode).
			WithBackendCode(httpErr.Code)
	}

	if errors.Is(err, context.Canceled) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, MsgRequestCancelled)
	}
	if isNetworkError(err) {
		return dErrors.NewNetwork(err, "")
	}

	return dErrors.Wrap(err, dErrors.CodeUnknown, MsgUnexpected)
}

func fromSQLState(err error, state, backendMsg string) *dErrors.Error {
	if m, ok := pgCodes[state]; ok {
		return dErrors.Wrap(err, m.code, m.message).WithStatus(m.status).WithBackendCode(state)
	}
	e := dErrors.Wrap(err, dErrors.CodeServer, MsgDatabaseError).WithBackendCode(state)
	if backendMsg != "" {
		e.WithDetail("backend_message", backendMsg)
	}
	return e
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
