// Package kafka streams admin audit events to a Kafka topic. The stream is
// optional; the database remains the record of truth.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"coreid/internal/platform/config"
	audit "coreid/pkg/platform/audit"
	"coreid/pkg/platform/circuit"
)

const (
	produceTimeout = 3 * time.Second
	streamCooldown = 15 * time.Second
)

// Producer is the subset of *kgo.Client the stream uses.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// AuditStream implements audit.Store by producing one record per event.
type AuditStream struct {
	producer Producer
	topic    string
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

// message is the wire shape of a streamed event.
type message struct {
	Action     string         `json:"action"`
	Category   string         `json:"category"`
	Target     string         `json:"target"`
	Status     string         `json:"status"`
	ActorID    string         `json:"actor_id,omitempty"`
	ActorEmail string         `json:"actor_email,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	ClientIP   string         `json:"client_ip,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewClient dials the brokers. It returns nil, nil when none are configured.
func NewClient(ctx context.Context, cfg config.KafkaConfig) (*kgo.Client, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.AuditTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("kafka ping failed: %w", err)
	}
	return client, nil
}

// EnsureTopic creates topic when it does not exist.
func EnsureTopic(ctx context.Context, client *kgo.Client, topic string, partitions int32) error {
	adm := kadm.NewClient(client)
	resps, err := adm.CreateTopics(ctx, partitions, -1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, r := range resps {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// NewAuditStream stops producing for a cooldown once five appends in a row
// fail. breakerOpts override the breaker defaults.
func NewAuditStream(producer Producer, topic string, logger *slog.Logger, breakerOpts ...circuit.Option) *AuditStream {
	if logger == nil {
		logger = slog.Default()
	}
	opts := append([]circuit.Option{
		circuit.WithFailureThreshold(5),
		circuit.WithSuccessThreshold(2),
		circuit.WithCooldown(streamCooldown),
	}, breakerOpts...)
	return &AuditStream{
		producer: producer,
		topic:    topic,
		breaker:  circuit.New("audit-stream", opts...),
		logger:   logger,
	}
}

// Append produces the event keyed by target so one resource's history stays
// ordered within a partition.
func (s *AuditStream) Append(ctx context.Context, event audit.Event) error {
	if !s.breaker.Allow() {
		s.logger.DebugContext(ctx, "audit stream skipped, circuit open", "topic", s.topic, "action", event.Action)
		return fmt.Errorf("produce audit event: %w", circuit.ErrOpen)
	}
	value, err := json.Marshal(message{
		Action:     string(event.Action),
		Category:   string(event.Action.Category()),
		Target:     event.Target,
		Status:     string(event.Status),
		ActorID:    event.ActorID,
		ActorEmail: event.ActorEmail,
		RequestID:  event.RequestID,
		ClientIP:   event.ClientIP,
		Details:    event.Details,
		OccurredAt: event.Timestamp.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal audit message: %w", err)
	}

	rec := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.Target),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "category", Value: []byte(event.Action.Category())},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, produceTimeout)
	defer cancel()
	if err := s.producer.ProduceSync(ctx, rec).FirstErr(); err != nil {
		if _, change := s.breaker.RecordFailure(); change.Opened {
			s.logger.WarnContext(ctx, "audit stream circuit opened", "topic", s.topic, "error", err)
		}
		return fmt.Errorf("produce audit event: %w", err)
	}
	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "audit stream circuit closed", "topic", s.topic)
	}
	return nil
}

// Healthy reports whether the stream circuit is closed.
func (s *AuditStream) Healthy() bool {
	return !s.breaker.IsOpen()
}
