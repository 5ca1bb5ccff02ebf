//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"coreid/internal/platform/config"
	"coreid/internal/platform/redis"
	"coreid/pkg/testutil/containers"
)

type CacheSuite struct {
	suite.Suite
	container *containers.RedisContainer
	client    *redis.Client
}

func TestCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupSuite() {
	s.container = containers.GetManager().GetRedis(s.T())
	s.client = s.container.Client
}

func (s *CacheSuite) SetupTest() {
	s.Require().NoError(s.container.FlushAll(context.Background()))
}

func (s *CacheSuite) TestRoundTrip() {
	ctx := context.Background()
	type stats struct{ Total int }

	var got stats
	found, err := s.client.GetJSON(ctx, "dashboard:stats", &got)
	s.NoError(err)
	s.False(found)

	s.Require().NoError(s.client.SetJSON(ctx, "dashboard:stats", stats{Total: 7}, time.Minute))
	found, err = s.client.GetJSON(ctx, "dashboard:stats", &got)
	s.NoError(err)
	s.True(found)
	s.Equal(7, got.Total)
}

func (s *CacheSuite) TestLatency() {
	d, err := s.client.Latency(context.Background())
	s.NoError(err)
	s.Positive(d)
}

func (s *CacheSuite) TestNewWithoutURLDisablesCache() {
	client, err := redis.New(context.Background(), config.RedisConfig{})
	s.NoError(err)
	s.Nil(client)
}

func (s *CacheSuite) TestNewRejectsBadURL() {
	_, err := redis.New(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	s.Error(err)
}
