package websocket

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

// fakeConn flags any overlapping WriteMessage calls, which the underlying
// websocket library forbids.
type fakeConn struct {
	writing  atomic.Bool
	overlaps atomic.Int32
	writes   atomic.Int32
	closed   atomic.Bool
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	if !c.writing.CompareAndSwap(false, true) {
		c.overlaps.Add(1)
	}
	time.Sleep(time.Millisecond)
	c.writes.Add(1)
	c.writing.Store(false)
	return nil
}

func (c *fakeConn) Close() error {
	c.closed.Store(true)
	return nil
}

func TestPushSerializesConcurrentWrites(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	fc := &fakeConn{}
	hub.add(userID, fc)

	const pushes = 20

	var wg sync.WaitGroup
	for i := 0; i < pushes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Push(userID, &models.Notification{ID: uuid.New(), UserID: userID, Message: "hi"})
		}()
	}
	wg.Wait()

	if got := fc.overlaps.Load(); got != 0 {
		t.Errorf("%d overlapping writes, want 0", got)
	}
	if got := fc.writes.Load(); got != pushes {
		t.Errorf("writes = %d, want %d", got, pushes)
	}
}

func TestPushUnknownUser(t *testing.T) {
	hub := NewHub()

	// No connection registered; must be a silent no-op.
	hub.Push(uuid.New(), &models.Notification{ID: uuid.New(), Message: "hi"})
}

func TestRegisterReplacesExistingConnection(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	first := &fakeConn{}
	second := &fakeConn{}
	hub.add(userID, first)
	hub.add(userID, second)

	if !first.closed.Load() {
		t.Error("old connection not closed on re-register")
	}

	hub.Push(userID, &models.Notification{ID: uuid.New(), UserID: userID, Message: "hi"})
	if first.writes.Load() != 0 || second.writes.Load() != 1 {
		t.Errorf("writes = (%d, %d), want (0, 1)", first.writes.Load(), second.writes.Load())
	}
}

func TestUnregisterOnlyRemovesCurrentConnection(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	first := &fakeConn{}
	second := &fakeConn{}
	hub.add(userID, first)
	hub.add(userID, second)

	// Stale unregister from the replaced connection must not evict the new one.
	hub.remove(userID, first)

	hub.Push(userID, &models.Notification{ID: uuid.New(), UserID: userID, Message: "hi"})
	if second.writes.Load() != 1 {
		t.Errorf("writes = %d, want 1", second.writes.Load())
	}
}
