package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/laredoma/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var tomate = models.Product{ID: "7", Name: "Tomate", Price: decimal.RequireFromString("1.50"), Weight: "1 kg"}

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	sess, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" || sess.Cart == nil || !sess.Cart.IsEmpty() {
		t.Fatalf("unexpected new session: %+v", sess)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("id = %s, want %s", got.ID, sess.ID)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_UpdateAppliesAndIsolates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	sess, _ := store.Create(ctx)

	updated, err := store.Update(ctx, sess.ID, func(s *Session) error {
		s.Cart.Add(tomate)
		s.Drawer.OpenDrawer()
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Cart.Quantity("7") != 1 || !updated.Drawer.IsOpen() {
		t.Errorf("update not applied: %+v", updated)
	}

	// mutating the returned copy must not touch the store
	updated.Cart.Clear()

	got, _ := store.Get(ctx, sess.ID)
	if got.Cart.Quantity("7") != 1 {
		t.Error("store state leaked through returned session")
	}
}

func TestMemoryStore_UpdateErrorDiscards(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	sess, _ := store.Create(ctx)

	boom := errors.New("boom")
	_, err := store.Update(ctx, sess.ID, func(s *Session) error {
		s.Cart.Add(tomate)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	got, _ := store.Get(ctx, sess.ID)
	if !got.Cart.IsEmpty() {
		t.Error("failed update should not be saved")
	}

	if _, err := store.Update(ctx, "missing", func(*Session) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of missing session: err = %v", err)
	}
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	sess, _ := store.Create(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, sess.ID, func(s *Session) error {
				s.Cart.Add(tomate)
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := store.Get(ctx, sess.ID)
	if got.Cart.Quantity("7") != 100 {
		t.Errorf("quantity = %d, want 100", got.Cart.Quantity("7"))
	}
}

// fakeClock is a settable time source for TTL tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClockedStore(ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(ttl)
	store.now = clock.Now
	return store, clock
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(time.Hour)

	sess, _ := store.Create(ctx)

	clock.Advance(59 * time.Minute)
	if _, err := store.Get(ctx, sess.ID); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	// reads slide the expiry forward
	clock.Advance(59 * time.Minute)
	if _, err := store.Update(ctx, sess.ID, func(s *Session) error {
		s.Cart.Add(tomate)
		return nil
	}); err != nil {
		t.Fatalf("Update after sliding: %v", err)
	}

	clock.Advance(time.Hour)
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after expiry: err = %v, want ErrNotFound", err)
	}
	if _, err := store.Update(ctx, sess.ID, func(*Session) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update after expiry: err = %v, want ErrNotFound", err)
	}
	if store.Len() != 0 {
		t.Errorf("expired session should be dropped on access, len = %d", store.Len())
	}
}

func TestMemoryStore_NoTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(0)

	sess, _ := store.Create(ctx)
	clock.Advance(365 * 24 * time.Hour)

	if _, err := store.Get(ctx, sess.ID); err != nil {
		t.Errorf("Get: %v", err)
	}
	if n := store.Sweep(); n != 0 {
		t.Errorf("Sweep removed %d sessions, want 0", n)
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(10 * time.Minute)

	old, _ := store.Create(ctx)
	clock.Advance(6 * time.Minute)
	fresh, _ := store.Create(ctx)
	clock.Advance(5 * time.Minute)

	if n := store.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d sessions, want 1", n)
	}
	if _, err := store.Get(ctx, old.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("old session: err = %v, want ErrNotFound", err)
	}
	if _, err := store.Get(ctx, fresh.ID); err != nil {
		t.Errorf("fresh session: %v", err)
	}
}

func TestMemoryStore_SweeperStops(t *testing.T) {
	store, clock := newClockedStore(time.Minute)
	for i := 0; i < 3; i++ {
		store.Create(context.Background())
	}
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := store.StartSweeper(ctx, 5*time.Millisecond)

	deadline := time.After(2 * time.Second)
	for store.Len() != 0 {
		select {
		case <-deadline:
			t.Fatalf("sweeper did not remove expired sessions, len = %d", store.Len())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
