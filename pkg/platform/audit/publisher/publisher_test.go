package publisher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "coreid/pkg/platform/audit"
	"coreid/pkg/platform/audit/store/memory"
	"coreid/pkg/requestcontext"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), audit.Event{Action: audit.ActionUserSuspended, Target: "user:1"})
	require.NoError(t, err)

	events, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionUserSuspended, events[0].Action)
	assert.Equal(t, audit.StatusSuccess, events[0].Status)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for range 10 {
		require.NoError(t, pub.Emit(context.Background(), audit.Event{Action: audit.ActionContentUpdated}))
	}
	pub.Close()

	events, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_BufferFull_DropsEvent(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(1))
	defer pub.Close()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{Action: audit.ActionContentUpdated})
			if err != nil {
				assert.ErrorIs(t, err, ErrBufferFull)
			}
		}()
	}
	wg.Wait()
}

func TestPublisher_EnrichesFromRequestContext(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	adminID := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithAdmin(context.Background(), requestcontext.AdminIdentity{ID: adminID, Email: "ops@coreid.test"})
	ctx = requestcontext.WithRequestID(ctx, "req-1")
	ctx = requestcontext.WithClientMetadata(ctx, "203.0.113.1", "ua")
	ctx = requestcontext.WithTime(ctx, at)

	require.NoError(t, pub.Emit(ctx, audit.Event{Action: audit.ActionEndorsementApproved}))

	events, _ := store.ListAll(context.Background())
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, adminID.String(), e.ActorID)
	assert.Equal(t, "ops@coreid.test", e.ActorEmail)
	assert.Equal(t, "req-1", e.RequestID)
	assert.Equal(t, "203.0.113.1", e.ClientIP)
	assert.Equal(t, at, e.Timestamp)
}

func TestPublisher_PreservesExistingTimestamp(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	customTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, pub.Emit(context.Background(), audit.Event{Action: audit.ActionUserDeleted, Timestamp: customTime}))

	events, _ := store.ListAll(context.Background())
	require.Len(t, events, 1)
	assert.Equal(t, customTime, events[0].Timestamp)
}

func TestPublisher_MachineActorHasNoID(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	ctx := requestcontext.WithAdmin(context.Background(), requestcontext.AdminIdentity{Machine: true})
	require.NoError(t, pub.Emit(ctx, audit.Event{Action: audit.ActionReportGenerated}))

	events, _ := store.ListAll(context.Background())
	require.Len(t, events, 1)
	assert.Empty(t, events[0].ActorID)
	assert.Equal(t, "system", events[0].ActorEmail)
}

func TestPublisher_StoreFailureIsReturned(t *testing.T) {
	store := memory.NewInMemoryStore()
	store.FailWith(errors.New("db down"))
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), audit.Event{Action: audit.ActionUserUpdated})
	assert.EqualError(t, err, "db down")
}

func TestPublisher_SinkFailureIsSwallowed(t *testing.T) {
	store := memory.NewInMemoryStore()
	sink := memory.NewInMemoryStore()
	sink.FailWith(errors.New("broker unavailable"))
	pub := NewPublisher(store, WithSink(sink))
	defer pub.Close()

	require.NoError(t, pub.Emit(context.Background(), audit.Event{Action: audit.ActionAdminInvited}))
	events, _ := store.ListAll(context.Background())
	assert.Len(t, events, 1)
}

func TestPublisher_SinkReceivesEvents(t *testing.T) {
	store := memory.NewInMemoryStore()
	sink := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithSink(sink))
	defer pub.Close()

	require.NoError(t, pub.Emit(context.Background(), audit.Event{Action: audit.ActionAdminInvited}))
	got, _ := sink.ListByAction(context.Background(), audit.ActionAdminInvited)
	assert.Len(t, got, 1)
}

func TestActionCategory(t *testing.T) {
	assert.Equal(t, audit.CategorySecurity, audit.ActionAdminInvited.Category())
	assert.Equal(t, audit.CategoryCompliance, audit.ActionUserDeleted.Category())
	assert.Equal(t, audit.CategoryOperations, audit.ActionContentPublished.Category())
	assert.Equal(t, audit.CategoryOperations, audit.Action("something_else").Category())
}
