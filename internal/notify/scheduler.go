// Package notify holds the transient "call succeeded" notice shown after a
// ledger change. A notice is visible for a fixed dwell and then hidden again.
package notify

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultDwell is how long a notice stays visible.
const DefaultDwell = 11 * time.Second

// State is the visibility of the notice.
type State string

const (
	Hidden  State = "hidden"
	Visible State = "visible"
)

// Notice describes the change call that triggered the notification.
type Notice struct {
	AccountID   string    `json:"account_id"`
	Method      string    `json:"method"`
	ContractID  string    `json:"contract_id"`
	AccountURL  string    `json:"account_url"`
	ContractURL string    `json:"contract_url"`
	At          time.Time `json:"at"`
}

// NewNotice builds a Notice with explorer links under explorerURL.
func NewNotice(explorerURL, accountID, contractID, method string) Notice {
	base := strings.TrimRight(explorerURL, "/")
	return Notice{
		AccountID:   accountID,
		Method:      method,
		ContractID:  contractID,
		AccountURL:  fmt.Sprintf("%s/%s", base, accountID),
		ContractURL: fmt.Sprintf("%s/%s", base, contractID),
	}
}

// Status is a point-in-time view of the scheduler.
type Status struct {
	State  State      `json:"state"`
	Notice *Notice    `json:"notice,omitempty"`
	HideAt *time.Time `json:"hide_at,omitempty"`
}

// Scheduler moves hidden -> visible on Trigger and back to hidden after the
// dwell. Only one hide timer is pending at a time; a trigger while visible
// stops it and starts a new one.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	dwell  time.Duration
	state  State
	notice Notice
	hideAt time.Time
	timer  Timer
	gen    uint64
}

// NewScheduler creates a hidden scheduler. A nil clock means the wall clock
// and a non-positive dwell means DefaultDwell.
func NewScheduler(dwell time.Duration, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Scheduler{clock: clock, dwell: dwell, state: Hidden}
}

// Trigger shows n and (re)starts the dwell timer.
func (s *Scheduler) Trigger(n Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen

	now := s.clock.Now()
	if n.At.IsZero() {
		n.At = now
	}
	s.notice = n
	s.state = Visible
	s.hideAt = now.Add(s.dwell)
	s.timer = s.clock.AfterFunc(s.dwell, func() { s.expire(gen) })
}

// Hide hides the notice immediately.
func (s *Scheduler) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.state = Hidden
}

func (s *Scheduler) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// a timer that lost the race with Stop must not hide a newer notice
	if gen != s.gen {
		return
	}
	s.state = Hidden
	s.timer = nil
}

// Status returns a snapshot suitable for serialization.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{State: s.state}
	if s.state == Visible {
		n := s.notice
		at := s.hideAt
		st.Notice = &n
		st.HideAt = &at
	}
	return st
}
