// Package workspace keeps the editing state of each signed-in account: the
// draft slot, the geometry under edit and the notification scheduler.
package workspace

import (
	"sync"
	"time"

	"coopart/internal/model"
	"coopart/internal/notify"
	"coopart/internal/transform"
)

// Workspace is one account's editing session.
type Workspace struct {
	AccountID string
	Notices   *notify.Scheduler

	slot   DraftSlot
	model  *transform.Model
	mintMu sync.Mutex
}

// New creates an empty workspace for accountID.
func New(accountID string, notices *notify.Scheduler) *Workspace {
	return &Workspace{
		AccountID: accountID,
		Notices:   notices,
		model:     transform.NewModel(),
	}
}

// Model returns the transform model bound to the draft.
func (w *Workspace) Model() *transform.Model { return w.model }

// Begin reserves a draft generation.
func (w *Workspace) Begin() uint64 { return w.slot.Begin() }

// Abandon withdraws a generation whose upload failed.
func (w *Workspace) Abandon(gen uint64) { w.slot.Abandon(gen) }

// LockMint serializes mints of this workspace's draft. Call the returned
// func to release.
func (w *Workspace) LockMint() func() {
	w.mintMu.Lock()
	return w.mintMu.Unlock
}

// Publish installs tile as the draft when gen is current. The transform model
// is reset for the new identity.
func (w *Workspace) Publish(gen uint64, tile model.Tile) bool {
	if !w.slot.Publish(gen, tile) {
		return false
	}
	w.model.Sync(&tile)
	return true
}

// Draft returns a copy of the current draft, or nil.
func (w *Workspace) Draft() *model.Tile { return w.slot.Current() }

// Update stores geometry changes for the same draft.
func (w *Workspace) Update(tile model.Tile) bool { return w.slot.Update(tile) }

// ClearIf drops the draft if it is still tileID and resets the model.
func (w *Workspace) ClearIf(tileID int) bool {
	if !w.slot.ClearIf(tileID) {
		return false
	}
	w.model.Sync(nil)
	return true
}

// Registry hands out one Workspace per account, created on first use.
type Registry struct {
	mu    sync.Mutex
	dwell time.Duration
	clock notify.Clock
	items map[string]*Workspace
}

// NewRegistry creates a registry whose workspaces hide notices after dwell.
func NewRegistry(dwell time.Duration, clock notify.Clock) *Registry {
	return &Registry{dwell: dwell, clock: clock, items: make(map[string]*Workspace)}
}

// Get returns accountID's workspace.
func (r *Registry) Get(accountID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.items[accountID]; ok {
		return w
	}
	w := New(accountID, notify.NewScheduler(r.dwell, r.clock))
	r.items[accountID] = w
	return w
}

// Len returns the number of workspaces created so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
