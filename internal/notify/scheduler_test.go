package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs due timers that were not stopped.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t.fn)
		}
	}
	c.mu.Unlock()
	for _, f := range due {
		f()
	}
}

// fireAll runs every timer, stopped or not, to model a Stop that lost the race.
func (c *fakeClock) fireAll() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.timers))
	for _, t := range c.timers {
		fns = append(fns, t.fn)
	}
	c.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

func TestScheduler_Dwell(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(DefaultDwell, clock)
	assert.Equal(t, Hidden, s.Status().State)

	s.Trigger(Notice{AccountID: "alice", Method: "mint_layer"})
	assert.Equal(t, Visible, s.Status().State)
	n := s.Status().Notice
	require.NotNil(t, n)
	assert.Equal(t, "mint_layer", n.Method)
	assert.Equal(t, clock.Now(), n.At)

	clock.Advance(10 * time.Second)
	assert.Equal(t, Visible, s.Status().State)

	clock.Advance(time.Second)
	assert.Equal(t, Hidden, s.Status().State)
	assert.Nil(t, s.Status().Notice)
}

func TestScheduler_RetriggerRestartsDwell(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(DefaultDwell, clock)

	s.Trigger(Notice{Method: "increment_downvotes"})
	clock.Advance(8 * time.Second)
	s.Trigger(Notice{Method: "set_greeting"})

	clock.Advance(5 * time.Second)
	assert.Equal(t, Visible, s.Status().State)
	require.NotNil(t, s.Status().Notice)
	assert.Equal(t, "set_greeting", s.Status().Notice.Method)

	clock.Advance(6 * time.Second)
	assert.Equal(t, Hidden, s.Status().State)
}

func TestScheduler_StaleTimerIgnored(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(DefaultDwell, clock)

	s.Trigger(Notice{Method: "first"})
	s.Trigger(Notice{Method: "second"})

	clock.fireAll()
	assert.Equal(t, Hidden, s.Status().State)

	s.Trigger(Notice{Method: "third"})
	clock.mu.Lock()
	stale := clock.timers[0].fn
	clock.mu.Unlock()
	stale()
	assert.Equal(t, Visible, s.Status().State)
}

func TestScheduler_HideAndStatus(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(0, clock)

	st := s.Status()
	assert.Equal(t, Hidden, st.State)
	assert.Nil(t, st.Notice)

	s.Trigger(Notice{Method: "mint_layer"})
	st = s.Status()
	require.NotNil(t, st.Notice)
	require.NotNil(t, st.HideAt)
	assert.Equal(t, clock.Now().Add(DefaultDwell), *st.HideAt)

	s.Hide()
	assert.Equal(t, Hidden, s.Status().State)
	assert.Nil(t, s.Status().Notice)
	clock.Advance(DefaultDwell)
	assert.Equal(t, Hidden, s.Status().State)
}

func TestNewNotice(t *testing.T) {
	n := NewNotice("https://explorer.testnet.near.org/accounts/", "alice.testnet", "coopart.testnet", "mint_layer")
	assert.Equal(t, "https://explorer.testnet.near.org/accounts/alice.testnet", n.AccountURL)
	assert.Equal(t, "https://explorer.testnet.near.org/accounts/coopart.testnet", n.ContractURL)
	assert.Equal(t, "mint_layer", n.Method)
}
