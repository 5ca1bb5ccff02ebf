// Package supabase calls the project's edge functions.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"coreid/internal/platform/config"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/circuit"
)

const (
	defaultTimeout  = 15 * time.Second
	maxErrorBody    = 4 << 10
	breakerCooldown = 30 * time.Second
)

// FunctionsClient posts JSON to {SUPABASE_URL}/functions/v1/<name> with the
// apikey and bearer headers the gateway requires.
type FunctionsClient struct {
	baseURL    string
	apiKey     string
	bearer     string
	httpClient *http.Client
	retry      backend.RetryOptions
	breaker    *circuit.Breaker
	logger     *slog.Logger
}

// Healthy reports whether recent calls have been succeeding.
func (f *FunctionsClient) Healthy() bool {
	return !f.breaker.IsOpen()
}

type Option func(*FunctionsClient)

func WithHTTPClient(c *http.Client) Option {
	return func(f *FunctionsClient) {
		f.httpClient = c
	}
}

func WithRetry(opts backend.RetryOptions) Option {
	return func(f *FunctionsClient) {
		f.retry = opts
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *FunctionsClient) {
		f.logger = logger
	}
}

// WithBreaker replaces the default breaker (five failures, 30s cooldown).
func WithBreaker(b *circuit.Breaker) Option {
	return func(f *FunctionsClient) {
		f.breaker = b
	}
}

// NewFunctionsClient authenticates with the service role key when present,
// otherwise with the anon key.
func NewFunctionsClient(cfg config.Supabase, opts ...Option) *FunctionsClient {
	bearer := cfg.ServiceRoleKey
	if bearer == "" {
		bearer = cfg.AnonKey
	}
	f := &FunctionsClient{
		baseURL:    cfg.FunctionsURL(),
		apiKey:     cfg.AnonKey,
		bearer:     bearer,
		httpClient: &http.Client{Timeout: defaultTimeout},
		retry:      backend.RetryOptions{OnlyRetryable: true},
		breaker:    circuit.New("edge-functions", circuit.WithFailureThreshold(5), circuit.WithCooldown(breakerCooldown)),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Invoke posts body to the named function and decodes the JSON response into
// out when out is non-nil. Non-2xx responses become *backend.HTTPError with
// the function's "error" field as message. While the breaker is open the
// call is refused with a network error without reaching the gateway.
func (f *FunctionsClient) Invoke(ctx context.Context, name string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid function payload")
	}
	if !f.breaker.Allow() {
		f.logger.WarnContext(ctx, "edge function call skipped, circuit open", "function", name)
		return dErrors.NewNetwork(fmt.Errorf("%s: %w", name, circuit.ErrOpen), "edge functions temporarily unavailable")
	}

	raw, err := backend.Retry(ctx, f.retry, func(ctx context.Context) ([]byte, error) {
		return f.post(ctx, name, payload)
	})
	if err != nil {
		err = backend.HandleError(err)
		f.record(ctx, name, err)
		return err
	}
	f.record(ctx, name, nil)

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeServer, "invalid function response")
	}
	return nil
}

// record counts only outages toward the breaker; a function rejecting its
// input says nothing about availability.
func (f *FunctionsClient) record(ctx context.Context, name string, err error) {
	if err != nil && !dErrors.IsRetryable(err) {
		return
	}
	if err != nil {
		if _, change := f.breaker.RecordFailure(); change.Opened {
			f.logger.WarnContext(ctx, "edge functions circuit opened", "function", name, "error", err)
		}
		return
	}
	if _, change := f.breaker.RecordSuccess(); change.Closed {
		f.logger.InfoContext(ctx, "edge functions circuit closed", "function", name)
	}
}

func (f *FunctionsClient) post(ctx context.Context, name string, payload []byte) ([]byte, error) {
	url := f.baseURL + "/" + strings.TrimPrefix(name, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", f.apiKey)
	if f.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+f.bearer)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, dErrors.NewNetwork(err, "edge function request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dErrors.NewNetwork(err, "edge function response interrupted")
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, backend.HandleError(&backend.HTTPError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(data, resp.Status),
	})
}

func errorMessage(body []byte, fallback string) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return fallback
}
