package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coreid/internal/platform/config"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/circuit"
)

func noSleep(context.Context, time.Duration) error { return nil }

func newTestClient(t *testing.T, h http.HandlerFunc) *FunctionsClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewFunctionsClient(
		config.Supabase{URL: srv.URL, AnonKey: "anon", ServiceRoleKey: "service"},
		WithRetry(backend.RetryOptions{MaxRetries: 3, OnlyRetryable: true, Sleep: noSleep}),
	)
}

func TestInvokeSendsHeadersAndDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/send-admin-invitation", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service", r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok", body["invitation_token"])
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	var out struct {
		Success bool `json:"success"`
	}
	err := c.Invoke(context.Background(), "send-admin-invitation", map[string]string{"invitation_token": "tok"}, &out)
	require.NoError(t, err)
	assert.True(t, out.Success)
}

func TestInvokeRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.Invoke(context.Background(), "fn", nil, nil))
	assert.Equal(t, int32(3), calls.Load())
}

func TestInvokeDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required fields"}`))
	})

	err := c.Invoke(context.Background(), "fn", map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	de, ok := dErrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, de.Status)
	assert.Equal(t, "Missing required fields", de.Message)
}

func TestInvokeMapsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	err := c.Invoke(context.Background(), "fn", nil, nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeAuth))
}

func TestAnonKeyIsBearerWithoutServiceRole(t *testing.T) {
	c := NewFunctionsClient(config.Supabase{URL: "https://x.supabase.co", AnonKey: "anon"})
	assert.Equal(t, "anon", c.bearer)
	assert.Equal(t, "https://x.supabase.co/functions/v1", c.baseURL)
}

func TestOpenCircuitStopsCallingTheGateway(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	var calls atomic.Int32
	var down atomic.Bool
	down.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if down.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	c := NewFunctionsClient(
		config.Supabase{URL: srv.URL, AnonKey: "anon"},
		WithRetry(backend.RetryOptions{MaxRetries: 1, Sleep: noSleep}),
		WithBreaker(circuit.New("edge-functions",
			circuit.WithFailureThreshold(2),
			circuit.WithSuccessThreshold(1),
			circuit.WithCooldown(time.Minute),
			circuit.WithClock(func() time.Time { return now }),
		)),
	)
	ctx := context.Background()

	require.Error(t, c.Invoke(ctx, "fn", nil, nil))
	require.Error(t, c.Invoke(ctx, "fn", nil, nil))
	assert.False(t, c.Healthy())

	err := c.Invoke(ctx, "fn", nil, nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNetwork))
	assert.ErrorIs(t, err, circuit.ErrOpen)
	assert.Equal(t, int32(2), calls.Load(), "refused while open")

	down.Store(false)
	now = now.Add(time.Minute)
	require.NoError(t, c.Invoke(ctx, "fn", nil, nil))
	assert.Equal(t, int32(3), calls.Load())
	assert.True(t, c.Healthy())
}

func TestClientErrorsDoNotOpenCircuit(t *testing.T) {
	c := NewFunctionsClient(
		config.Supabase{URL: newBadRequestServer(t), AnonKey: "anon"},
		WithRetry(backend.RetryOptions{MaxRetries: 1, Sleep: noSleep}),
		WithBreaker(circuit.New("edge-functions", circuit.WithFailureThreshold(1), circuit.WithCooldown(time.Minute))),
	)
	for range 3 {
		err := c.Invoke(context.Background(), "fn", nil, nil)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	}
	assert.True(t, c.Healthy())
}

func newBadRequestServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}
