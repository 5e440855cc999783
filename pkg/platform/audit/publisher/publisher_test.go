package publisher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "larder/pkg/domain"
	audit "larder/pkg/platform/audit"
	"larder/pkg/platform/audit/store/memory"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	kitchenID := id.KitchenID(uuid.New())
	event := audit.Event{
		KitchenID: kitchenID,
		Action:    string(audit.EventKitchenCreated),
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	events, err := store.ListByKitchen(context.Background(), kitchenID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventKitchenCreated), events[0].Action)
	assert.False(t, events[0].Timestamp.IsZero(), "Emit should stamp the event")
}

func TestPublisher_AsyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(10))
	defer pub.Close()

	kitchenID := id.KitchenID(uuid.New())
	event := audit.Event{
		KitchenID: kitchenID,
		Action:    string(audit.EventMemberInvited),
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	// Wait for async processing
	require.Eventually(t, func() bool {
		events, err := store.ListByKitchen(context.Background(), kitchenID)
		return err == nil && len(events) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	kitchenID := id.KitchenID(uuid.New())
	for range 10 {
		err := pub.Emit(context.Background(), audit.Event{
			KitchenID: kitchenID,
			Action:    string(audit.EventKitchenCreated),
		})
		require.NoError(t, err)
	}

	// Close should drain all buffered events
	pub.Close()

	events, err := store.ListByKitchen(context.Background(), kitchenID)
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_BufferFull_DropsEvent(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(1))
	defer pub.Close()

	kitchenID := id.KitchenID(uuid.New())

	// Fill the buffer with concurrent writes
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pub.Emit(context.Background(), audit.Event{
				KitchenID: kitchenID,
				Action:    string(audit.EventKitchenCreated),
			})
		}()
	}
	wg.Wait()

	// Some events may have been dropped (buffer size 1); the publisher must
	// stay usable and never block the caller.
	err := pub.Emit(context.Background(), audit.Event{
		KitchenID: kitchenID,
		Action:    string(audit.EventKitchenDeleted),
	})
	require.NoError(t, err)
}

func TestPublisher_EmitAfterClose_DropsEvent(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(10))
	pub.Close()

	kitchenID := id.KitchenID(uuid.New())
	err := pub.Emit(context.Background(), audit.Event{
		KitchenID: kitchenID,
		Action:    string(audit.EventKitchenCreated),
	})
	require.NoError(t, err)

	events, err := store.ListByKitchen(context.Background(), kitchenID)
	require.NoError(t, err)
	assert.Empty(t, events, "events emitted after Close are dropped, not delivered")
}

func TestPublisher_ConcurrentEmitAndClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(4))

	kitchenID := id.KitchenID(uuid.New())

	// Emitters race Close; no interleaving may panic on a closed channel.
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pub.Emit(context.Background(), audit.Event{
				KitchenID: kitchenID,
				Action:    string(audit.EventKitchenCreated),
			})
		}()
	}
	pub.Close()
	wg.Wait()

	// Close is idempotent.
	pub.Close()
}
