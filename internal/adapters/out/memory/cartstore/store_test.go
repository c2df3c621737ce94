package cartstore_test

import (
	"sync"
	"testing"
	"time"

	"foodbot/internal/adapters/out/memory/cartstore"
	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func session(t *testing.T, id string) kernel.SessionID {
	t.Helper()
	sid, err := kernel.NewSessionID(id)
	require.NoError(t, err)
	return sid
}

func cart(t *testing.T, names []string, quantities []int) *order.Cart {
	t.Helper()
	c, err := order.NewCart(names, quantities)
	require.NoError(t, err)
	return c
}

func TestInMemoryCartStore_PutGetDelete(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore(nil)
	sid := session(t, "s1")

	_, ok := store.Get(ctx, sid)
	assert.False(t, ok)

	store.Put(ctx, sid, cart(t, []string{"rice"}, []int{2}))
	got, ok := store.Get(ctx, sid)
	require.True(t, ok)
	assert.Equal(t, "rice: 2", got.String())

	store.Delete(ctx, sid)
	_, ok = store.Get(ctx, sid)
	assert.False(t, ok)

	store.Delete(ctx, sid)
	assert.Equal(t, 0, store.Len())
}

func TestInMemoryCartStore_Merge(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore(nil)
	sid := session(t, "s1")

	first := store.Merge(ctx, sid, cart(t, []string{"rice", "soda"}, []int{2, 1}))
	assert.Equal(t, "rice: 2, soda: 1", first.String())

	merged := store.Merge(ctx, sid, cart(t, []string{"rice"}, []int{5}))
	assert.Equal(t, "rice: 5, soda: 1", merged.String())

	got, _ := store.Get(ctx, sid)
	assert.Equal(t, "rice: 5, soda: 1", got.String())
}

func TestInMemoryCartStore_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore(nil)
	sid := session(t, "s1")
	original := cart(t, []string{"rice"}, []int{2})

	store.Put(ctx, sid, original)
	original.Remove([]string{"rice"})

	got, _ := store.Get(ctx, sid)
	got.Remove([]string{"rice"})

	again, _ := store.Get(ctx, sid)
	assert.Equal(t, "rice: 2", again.String())
}

func TestInMemoryCartStore_SessionsAreIsolated(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore(nil)

	store.Put(ctx, session(t, "a"), cart(t, []string{"rice"}, []int{1}))
	store.Put(ctx, session(t, "b"), cart(t, []string{"naan"}, []int{3}))
	store.Delete(ctx, session(t, "a"))

	got, ok := store.Get(ctx, session(t, "b"))
	require.True(t, ok)
	assert.Equal(t, "naan: 3", got.String())
	assert.Equal(t, 1, store.Len())
}

func TestInMemoryCartStore_EvictIdle(t *testing.T) {
	ctx := t.Context()
	clock := &fakeClock{now: time.Date(2026, time.October, 12, 9, 0, 0, 0, time.UTC)}
	store := cartstore.NewInMemoryCartStore(clock)

	store.Put(ctx, session(t, "old"), cart(t, []string{"rice"}, []int{1}))
	clock.advance(20 * time.Minute)
	store.Put(ctx, session(t, "fresh"), cart(t, []string{"naan"}, []int{1}))
	clock.advance(20 * time.Minute)

	evicted := store.EvictIdle(ctx, clock.Now().Add(-30*time.Minute))

	assert.Equal(t, 1, evicted)
	_, ok := store.Get(ctx, session(t, "old"))
	assert.False(t, ok)
	_, ok = store.Get(ctx, session(t, "fresh"))
	assert.True(t, ok)
}

func TestInMemoryCartStore_ConcurrentMerges(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore(ports.ClockFunc(time.Now))
	sid := session(t, "busy")

	additions := make([]*order.Cart, 50)
	for i := range additions {
		additions[i] = cart(t, []string{"item-" + string(rune('a'+i%26))}, []int{i})
	}

	var wg sync.WaitGroup
	for _, c := range additions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Merge(ctx, sid, c)
		}()
	}
	wg.Wait()

	got, ok := store.Get(ctx, sid)
	require.True(t, ok)
	assert.Equal(t, 26, got.Len())
}
