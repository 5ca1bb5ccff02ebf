// Package httputil holds the JSON request/response helpers shared by handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/listing"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Preparable is implemented by request DTOs that normalize themselves after
// tag validation.
type Preparable interface {
	Prepare() error
}

type errorBody struct {
	Error       string         `json:"error"`
	Description string         `json:"error_description,omitempty"`
	BackendCode string         `json:"backend_code,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
}

// WriteJSON writes v with status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError renders err as {"error": code, "error_description": msg}.
// Internal and unknown errors omit the description.
func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		err = dErrors.New(dErrors.CodeInternal, "unknown error")
	}
	de, ok := dErrors.As(err)
	if !ok {
		de, _ = dErrors.As(backend.HandleError(err))
	}

	status := de.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	body := errorBody{Error: string(de.Code)}
	switch de.Code {
	case dErrors.CodeInternal, dErrors.CodeUnknown:
	default:
		body.Description = de.Message
		body.BackendCode = de.BackendCode
		body.Details = de.Details
	}
	WriteJSON(w, status, body)
}

// DecodeAndPrepare decodes a JSON body into T, runs struct-tag validation,
// then Prepare when T implements Preparable. On failure it writes the error
// response and returns ok=false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	ctx := r.Context()
	req := new(T)
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	if err := Validate(req); err != nil {
		logger.WarnContext(ctx, "request validation failed", "error", err)
		WriteError(w, err)
		return nil, false
	}
	if p, ok := any(req).(Preparable); ok {
		if err := p.Prepare(); err != nil {
			WriteError(w, err)
			return nil, false
		}
	}
	return req, true
}

// Validate runs struct-tag validation and returns a validation error with
// per-field messages.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return dErrors.NewValidation("request validation failed", fields)
}

// PaginationFromQuery reads page and pageSize (or page_size) query parameters.
func PaginationFromQuery(r *http.Request) backend.Pagination {
	q := r.URL.Query()
	size := q.Get("pageSize")
	if size == "" {
		size = q.Get("page_size")
	}
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(size)
	return backend.Pagination{Page: page, PageSize: pageSize}.Normalize()
}

// SortFromQuery reads sort and direction. A key without a direction sorts
// ascending.
func SortFromQuery(r *http.Request) listing.SortState {
	q := r.URL.Query()
	key := strings.TrimSpace(q.Get("sort"))
	if key == "" {
		return listing.SortState{}
	}
	dir := listing.ParseSortDirection(q.Get("direction"))
	if dir == listing.SortNone {
		dir = listing.SortAsc
	}
	return listing.SortState{Key: key, Direction: dir}
}

// TableFromQuery builds a client-side table over columns from the sort and
// pagination parameters.
func TableFromQuery[T any](r *http.Request, columns []listing.Column[T]) listing.Table[T] {
	p := PaginationFromQuery(r)
	return listing.Table[T]{Columns: columns, Sort: SortFromQuery(r), Page: p.Page, PageSize: p.PageSize}
}

// QueryList reads a repeated or comma-separated query parameter.
func QueryList(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for part := range strings.SplitSeq(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// QueryInt reads an integer query parameter or returns def.
func QueryInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return def
}

// QueryTime reads an RFC 3339 or YYYY-MM-DD query parameter.
func QueryTime(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, dErrors.NewValidation(key+" must be a date", map[string]string{key: "date"})
}

// URLParamUUID parses a chi URL parameter as a UUID.
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, dErrors.NewValidation("invalid "+name, map[string]string{name: "uuid"})
	}
	return id, nil
}

// WriteCSV streams a CSV attachment.
func WriteCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// LogAndWriteError logs a failed operation at a level matching its code and
// writes the error response.
func LogAndWriteError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if de, ok := dErrors.As(err); ok && de.Status > 0 && de.Status < http.StatusInternalServerError {
		logger.WarnContext(ctx, msg, args...)
	} else {
		logger.ErrorContext(ctx, msg, args...)
	}
	WriteError(w, err)
}
