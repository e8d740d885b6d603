package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// collector records delivered payloads and signals each delivery.
type collector struct {
	mu       sync.Mutex
	payloads []Payload
	fired    chan struct{}
	err      error
}

func newCollector(buf int) *collector {
	return &collector{fired: make(chan struct{}, buf)}
}

func (c *collector) notify(p Payload) error {
	c.mu.Lock()
	c.payloads = append(c.payloads, p)
	c.mu.Unlock()
	c.fired <- struct{}{}
	return c.err
}

func (c *collector) delivered() []Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Payload, len(c.payloads))
	copy(out, c.payloads)
	return out
}

func waitFired(t *testing.T, c *collector, within time.Duration) {
	t.Helper()
	select {
	case <-c.fired:
	case <-time.After(within):
		t.Fatal("timer did not fire in time")
	}
}

func TestScheduler_FiresAtDueTime(t *testing.T) {
	c := newCollector(1)
	s := New(c.notify, zap.NewNop())
	defer s.Stop()

	s.ScheduleOnce(1, time.Now().Add(20*time.Millisecond), Payload{UserID: 10, ChatID: 20, Note: "Дрель"})

	waitFired(t, c, time.Second)

	delivered := c.delivered()
	require.Len(t, delivered, 1)
	assert.Equal(t, int64(10), delivered[0].UserID)
	assert.Equal(t, int64(20), delivered[0].ChatID)
	assert.Equal(t, "Дрель", delivered[0].Note)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_PastDueFiresPromptly(t *testing.T) {
	c := newCollector(1)
	s := New(c.notify, zap.NewNop())
	defer s.Stop()

	s.ScheduleOnce(1, time.Now().Add(-time.Hour), Payload{ChatID: 20, Note: "просрочено"})

	waitFired(t, c, time.Second)
	assert.Len(t, c.delivered(), 1)
}

func TestScheduler_ExactlyOncePerKey(t *testing.T) {
	c := newCollector(4)
	s := New(c.notify, zap.NewNop())
	defer s.Stop()

	// Re-scheduling the same key replaces the previous timer.
	s.ScheduleOnce(1, time.Now().Add(10*time.Millisecond), Payload{Note: "первый"})
	s.ScheduleOnce(1, time.Now().Add(30*time.Millisecond), Payload{Note: "второй"})

	waitFired(t, c, time.Second)

	// Give the replaced timer a chance to misfire before checking.
	time.Sleep(50 * time.Millisecond)

	delivered := c.delivered()
	require.Len(t, delivered, 1)
	assert.Equal(t, "второй", delivered[0].Note)
}

func TestScheduler_DeliveryFailureIsIsolated(t *testing.T) {
	failing := newCollector(1)
	failing.err = errors.New("chat unreachable")

	ok := newCollector(1)

	// One scheduler whose notify fails for a specific chat.
	var mu sync.Mutex
	notify := func(p Payload) error {
		mu.Lock()
		defer mu.Unlock()
		if p.ChatID == 1 {
			return failing.notify(p)
		}
		return ok.notify(p)
	}

	s := New(notify, zap.NewNop())
	defer s.Stop()

	s.ScheduleOnce(1, time.Now(), Payload{ChatID: 1, Note: "упадёт"})
	s.ScheduleOnce(2, time.Now().Add(20*time.Millisecond), Payload{ChatID: 2, Note: "дойдёт"})

	waitFired(t, failing, time.Second)
	waitFired(t, ok, time.Second)

	assert.Len(t, ok.delivered(), 1)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_ConcurrentTimers(t *testing.T) {
	const n = 20

	c := newCollector(n)
	s := New(c.notify, zap.NewNop())
	defer s.Stop()

	for i := 0; i < n; i++ {
		s.ScheduleOnce(int64(i), time.Now().Add(time.Duration(i)*time.Millisecond), Payload{ChatID: int64(i)})
	}

	for i := 0; i < n; i++ {
		waitFired(t, c, time.Second)
	}

	assert.Len(t, c.delivered(), n)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_StopCancelsPending(t *testing.T) {
	c := newCollector(1)
	s := New(c.notify, zap.NewNop())

	s.ScheduleOnce(1, time.Now().Add(time.Hour), Payload{})
	assert.Equal(t, 1, s.Pending())

	s.Stop()
	assert.Equal(t, 0, s.Pending())

	select {
	case <-c.fired:
		t.Fatal("stopped timer must not fire")
	case <-time.After(50 * time.Millisecond):
	}
}
