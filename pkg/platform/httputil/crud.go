package httputil

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	dErrors "coreid/pkg/domain-errors"
)

// Create decodes In, calls fn and answers 201 with its result.
func Create[In, Out any](logger *slog.Logger, what string, fn func(context.Context, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		req, ok := DecodeAndPrepare[In](w, r, logger)
		if !ok {
			return
		}
		out, err := fn(ctx, *req)
		if err != nil {
			LogAndWriteError(ctx, w, logger, "failed to create "+what, err)
			return
		}
		WriteJSON(w, http.StatusCreated, out)
	}
}

// ByID calls fn with the {id} URL parameter.
func ByID[Out any](logger *slog.Logger, what string, fn func(context.Context, uuid.UUID) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := URLParamUUID(r, "id")
		if err != nil {
			WriteError(w, err)
			return
		}
		out, err := fn(ctx, id)
		if err != nil {
			LogAndWriteError(ctx, w, logger, "failed to load "+what, err, "id", id)
			return
		}
		WriteJSON(w, http.StatusOK, out)
	}
}

func PatchByID[In, Out any](logger *slog.Logger, what string, fn func(context.Context, uuid.UUID, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := URLParamUUID(r, "id")
		if err != nil {
			WriteError(w, err)
			return
		}
		req, ok := DecodeAndPrepare[In](w, r, logger)
		if !ok {
			return
		}
		out, err := fn(ctx, id, *req)
		if err != nil {
			LogAndWriteError(ctx, w, logger, "failed to update "+what, err, "id", id)
			return
		}
		WriteJSON(w, http.StatusOK, out)
	}
}

// DeleteByID answers 204 on success.
func DeleteByID(logger *slog.Logger, what string, fn func(context.Context, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := URLParamUUID(r, "id")
		if err != nil {
			WriteError(w, err)
			return
		}
		if err := fn(ctx, id); err != nil {
			LogAndWriteError(ctx, w, logger, "failed to delete "+what, err, "id", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// WriteList writes rows with a 200, rendering nil as [].
func WriteList[T any](w http.ResponseWriter, rows []T) {
	if rows == nil {
		rows = []T{}
	}
	WriteJSON(w, http.StatusOK, rows)
}

// QueryUUID reads an optional UUID query parameter.
func QueryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, dErrors.NewValidation("invalid "+key, map[string]string{key: "uuid"})
	}
	return &id, nil
}
