// Package publisher delivers admin action events to the audit store and to
// any secondary sinks such as the Kafka stream.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	audit "coreid/pkg/platform/audit"
	"coreid/pkg/requestcontext"
)

// ErrBufferFull is returned by Emit in async mode when the queue is full.
var ErrBufferFull = errors.New("audit buffer full")

const drainTimeout = 5 * time.Second

// Publisher writes to the primary store and then to each sink. Sink
// failures are logged and never reach the caller.
type Publisher struct {
	store  audit.Store
	sinks  []audit.Store
	logger *slog.Logger

	queue     chan audit.Event
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer queues events and persists them on a background goroutine.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.queue = make(chan audit.Event, size)
		}
	}
}

func WithSink(sink audit.Store) Option {
	return func(p *Publisher) {
		if sink != nil {
			p.sinks = append(p.sinks, sink)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.queue != nil {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

// Emit stamps the event with request metadata and records it.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	event = enrich(ctx, event)
	if p.queue == nil {
		return p.write(ctx, event)
	}
	select {
	case p.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event", "action", event.Action)
		return ErrBufferFull
	}
}

// Close stops accepting events and drains the queue.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		if p.queue != nil {
			close(p.queue)
			p.wg.Wait()
		}
	})
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for event := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		if err := p.write(ctx, event); err != nil {
			p.logger.Error("failed to persist audit event", "action", event.Action, "error", err)
		}
		cancel()
	}
}

func (p *Publisher) write(ctx context.Context, event audit.Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		return err
	}
	for _, sink := range p.sinks {
		if err := sink.Append(ctx, event); err != nil {
			p.logger.WarnContext(ctx, "audit sink failed", "action", event.Action, "error", err)
		}
	}
	return nil
}

func enrich(ctx context.Context, event audit.Event) audit.Event {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Status == "" {
		event.Status = audit.StatusSuccess
	}
	if admin := requestcontext.Admin(ctx); !admin.IsZero() {
		if event.ActorID == "" && !admin.Machine {
			event.ActorID = admin.ID.String()
		}
		if event.ActorEmail == "" {
			event.ActorEmail = admin.Label()
		}
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	return event
}
