//go:build integration

package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"coreid/internal/platform/config"
	"coreid/internal/platform/kafka"
	audit "coreid/pkg/platform/audit"
	"coreid/pkg/testutil/containers"
)

type AuditStreamSuite struct {
	suite.Suite
	brokers []string
	client  *kgo.Client
}

func TestAuditStreamSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AuditStreamSuite))
}

func (s *AuditStreamSuite) SetupSuite() {
	s.brokers = containers.GetManager().GetRedpanda(s.T()).Brokers
	client, err := kafka.NewClient(context.Background(), config.KafkaConfig{Brokers: s.brokers, AuditTopic: "audit-it"})
	s.Require().NoError(err)
	s.client = client
	s.Require().NoError(kafka.EnsureTopic(context.Background(), client, "audit-it", 1))
}

func (s *AuditStreamSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *AuditStreamSuite) TestEnsureTopicIsIdempotent() {
	s.NoError(kafka.EnsureTopic(context.Background(), s.client, "audit-it", 1))
}

func (s *AuditStreamSuite) TestProducedEventIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stream := kafka.NewAuditStream(s.client, "audit-it", nil)
	s.Require().NoError(stream.Append(ctx, audit.Event{
		Action: audit.ActionUserSuspended,
		Target: "user:42",
		Status: audit.StatusSuccess,
	}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics("audit-it"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	var found bool
	for !found && ctx.Err() == nil {
		consumer.PollFetches(ctx).EachRecord(func(r *kgo.Record) {
			if string(r.Key) == "user:42" {
				found = true
			}
		})
	}
	s.True(found)
}
