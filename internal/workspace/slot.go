package workspace

import (
	"sync"

	"coopart/internal/model"
)

// DraftSlot holds at most one draft tile. Each upload takes a generation with
// Begin. Publish succeeds unless a newer generation has published or is
// still pending; an upload that fails calls Abandon so it no longer blocks
// older ones.
type DraftSlot struct {
	mu        sync.Mutex
	gen       uint64
	published uint64
	pending   map[uint64]struct{}
	tile      *model.Tile
}

// Begin reserves a new generation for an upload that will publish later.
func (s *DraftSlot) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.pending == nil {
		s.pending = make(map[uint64]struct{})
	}
	s.pending[s.gen] = struct{}{}
	return s.gen
}

// Abandon withdraws gen after a failed upload.
func (s *DraftSlot) Abandon(gen uint64) {
	s.mu.Lock()
	delete(s.pending, gen)
	s.mu.Unlock()
}

// Publish stores tile unless a newer generation already published or is
// still pending.
func (s *DraftSlot) Publish(gen uint64, tile model.Tile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, gen)
	if gen <= s.published {
		return false
	}
	for g := range s.pending {
		if g > gen {
			return false
		}
	}
	s.published = gen
	s.tile = &tile
	return true
}

// Current returns a copy of the draft, or nil.
func (s *DraftSlot) Current() *model.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tile == nil {
		return nil
	}
	t := *s.tile
	return &t
}

// Update replaces the draft with tile when both share the same TileID.
func (s *DraftSlot) Update(tile model.Tile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tile == nil || s.tile.TileID != tile.TileID {
		return false
	}
	s.tile = &tile
	return true
}

// ClearIf empties the slot if it still holds tileID.
func (s *DraftSlot) ClearIf(tileID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tile == nil || s.tile.TileID != tileID {
		return false
	}
	s.tile = nil
	return true
}
