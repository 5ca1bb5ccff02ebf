package recorder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coreid/internal/monitoring/models"
	"coreid/pkg/requestcontext"
	"coreid/pkg/testutil"
)

type memorySink struct {
	mu      sync.Mutex
	batches [][]models.APIMetric
	err     error
}

func (s *memorySink) Record(_ context.Context, batch []models.APIMetric) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, slices.Clone(batch))
	return s.err
}

func (s *memorySink) all() []models.APIMetric {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.APIMetric
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRouter(rec *Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(rec.Middleware)
	r.Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	return r
}

func TestMiddlewareRecordsRoutePatternAndCaller(t *testing.T) {
	sink := &memorySink{}
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := []time.Time{start, start.Add(42 * time.Millisecond)}
	rec := New(sink, quiet(), WithClock(func() time.Time {
		now := clock[0]
		clock = clock[1:]
		return now
	}))

	req := testutil.WithAdmin(httptest.NewRequest(http.MethodGet, "/users/7", nil))
	newRouter(rec).ServeHTTP(httptest.NewRecorder(), req)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, rec.Run(ctx), context.Canceled)

	got := sink.all()
	require.Len(t, got, 1)
	assert.Equal(t, "/users/{id}", got[0].Endpoint)
	assert.Equal(t, http.MethodGet, got[0].Method)
	assert.Equal(t, http.StatusNotFound, got[0].StatusCode)
	assert.Equal(t, 42, got[0].ResponseTimeMS)
	assert.Equal(t, start, got[0].CreatedAt)
	require.NotNil(t, got[0].UserID)
	assert.Equal(t, testutil.TestAdmin.ID, *got[0].UserID)
}

func TestMachineCallerHasNoUser(t *testing.T) {
	sink := &memorySink{}
	rec := New(sink, quiet())

	req := testutil.WithAdmin(httptest.NewRequest(http.MethodGet, "/ping", nil), requestcontext.AdminIdentity{Machine: true})
	newRouter(rec).ServeHTTP(httptest.NewRecorder(), req)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = rec.Run(ctx)

	got := sink.all()
	require.Len(t, got, 1)
	assert.Equal(t, http.StatusOK, got[0].StatusCode)
	assert.Nil(t, got[0].UserID)
}

func TestFullBatchIsWrittenWithoutWaitingForTick(t *testing.T) {
	sink := &memorySink{}
	rec := New(sink, quiet(), WithBatch(2, time.Hour))
	router := newRouter(rec)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rec.Run(ctx) }()

	for range 2 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	}
	assert.Eventually(t, func() bool { return len(sink.all()) == 2 }, time.Second, 10*time.Millisecond)

	cancel()
	<-done
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Len(t, sink.batches, 1)
}

func TestFullBufferDropsSamples(t *testing.T) {
	sink := &memorySink{}
	rec := New(sink, quiet(), WithBuffer(1))
	router := newRouter(rec)

	for range 3 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = rec.Run(ctx)
	assert.Len(t, sink.all(), 1)
}

func TestFailedWriteIsNotRetried(t *testing.T) {
	sink := &memorySink{err: errors.New("relation api_metrics does not exist")}
	rec := New(sink, quiet())
	rec.enqueue(context.Background(), models.APIMetric{Endpoint: "/ping"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = rec.Run(ctx)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Len(t, sink.batches, 1)
	assert.Empty(t, rec.queue)
}
