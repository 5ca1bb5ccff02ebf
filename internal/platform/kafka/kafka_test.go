package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"coreid/internal/platform/config"
	audit "coreid/pkg/platform/audit"
	"coreid/pkg/platform/circuit"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
}

func (f *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	var out kgo.ProduceResults
	for _, r := range rs {
		if f.err == nil {
			f.records = append(f.records, r)
		}
		out = append(out, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return out
}

func TestAuditStreamAppend(t *testing.T) {
	p := &fakeProducer{}
	s := NewAuditStream(p, "coreid.admin.audit", nil)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	err := s.Append(context.Background(), audit.Event{
		Action:    audit.ActionAdminInvited,
		Target:    "admin:new@coreid.test",
		Status:    audit.StatusSuccess,
		Timestamp: at,
		Details:   map[string]any{"role": "moderator"},
	})
	require.NoError(t, err)
	require.Len(t, p.records, 1)

	rec := p.records[0]
	assert.Equal(t, "coreid.admin.audit", rec.Topic)
	assert.Equal(t, "admin:new@coreid.test", string(rec.Key))
	assert.Equal(t, "security", string(rec.Headers[0].Value))

	var msg map[string]any
	require.NoError(t, json.Unmarshal(rec.Value, &msg))
	assert.Equal(t, "admin_invited", msg["action"])
	assert.Equal(t, "moderator", msg["details"].(map[string]any)["role"])
}

func TestAuditStreamOpensCircuitAfterFailures(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	p := &fakeProducer{err: errors.New("no brokers")}
	s := NewAuditStream(p, "t", nil, circuit.WithClock(func() time.Time { return now }))

	for range 5 {
		assert.Error(t, s.Append(context.Background(), audit.Event{Action: audit.ActionUserUpdated}))
	}
	assert.False(t, s.Healthy())

	p.err = nil
	err := s.Append(context.Background(), audit.Event{Action: audit.ActionUserUpdated})
	require.ErrorIs(t, err, circuit.ErrOpen)
	assert.Empty(t, p.records, "nothing is produced during the cooldown")

	now = now.Add(streamCooldown)
	require.NoError(t, s.Append(context.Background(), audit.Event{Action: audit.ActionUserUpdated}))
	require.NoError(t, s.Append(context.Background(), audit.Event{Action: audit.ActionUserUpdated}))
	assert.True(t, s.Healthy())
}

func TestNewClientWithoutBrokers(t *testing.T) {
	client, err := NewClient(context.Background(), config.KafkaConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}
