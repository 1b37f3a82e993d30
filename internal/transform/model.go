// Package transform owns the geometry of the tile under edit.
//
// The model is synchronous and has no side effects beyond its own state.
// Width and height never drop below MinExtent and rotation is always kept in
// [0, 360) degrees; invalid geometry is clamped rather than reported.
package transform

import (
	"math"
	"sync"

	"coopart/internal/model"
)

const (
	DefaultWidth  = 100
	DefaultHeight = 100
	// MinExtent is the smallest width or height a resize can produce.
	MinExtent = 1
)

// Observer receives every geometry change as it happens.
type Observer func(model.TransformAttrs)

// Model holds exactly one tile's mutable geometry.
type Model struct {
	mu        sync.Mutex
	attrs     model.TransformAttrs
	tileID    int
	hasTile   bool
	observers []Observer
}

// NewModel returns a model initialized to the default geometry.
func NewModel() *Model {
	m := &Model{}
	m.attrs = defaults(nil)
	return m
}

// Initialize resets geometry to the tile's values, or to defaults when the
// tile is nil. Zero and NaN count as missing for every field.
func (m *Model) Initialize(tile *model.Tile) {
	m.mu.Lock()
	m.attrs = defaults(tile)
	m.hasTile = tile != nil
	m.tileID = 0
	if tile != nil {
		m.tileID = tile.TileID
	}
	snap := m.attrs
	observers := m.observers
	m.mu.Unlock()
	notify(observers, snap)
}

// Sync re-initializes only when the tile identity differs from the one under
// edit, so geometry updates echoed back for the same tile keep the in-progress
// transform. It reports whether a reset happened.
func (m *Model) Sync(tile *model.Tile) bool {
	m.mu.Lock()
	same := (tile == nil && !m.hasTile) || (tile != nil && m.hasTile && tile.TileID == m.tileID)
	m.mu.Unlock()
	if same {
		return false
	}
	m.Initialize(tile)
	return true
}

// ApplyGesture applies one relative interaction and returns the new geometry.
func (m *Model) ApplyGesture(g Gesture) model.TransformAttrs {
	m.mu.Lock()
	a := m.attrs
	switch g.Kind {
	case GestureMove:
		a.X = clampPosition(a.X + finite(g.DX))
		a.Y = clampPosition(a.Y + finite(g.DY))
	case GestureResize:
		a.Width = clampExtent(a.Width + finite(g.DW))
		a.Height = clampExtent(a.Height + finite(g.DH))
	case GestureRotate:
		a.R = wrapDegrees(a.R + finite(g.DR))
	}
	m.attrs = a
	observers := m.observers
	m.mu.Unlock()
	notify(observers, a)
	return a
}

// SetAttrs replaces the geometry with absolute values from a transform-end
// event, applying the same clamping and wrapping as gestures.
func (m *Model) SetAttrs(a model.TransformAttrs) model.TransformAttrs {
	a.X = finite(a.X)
	a.Y = finite(a.Y)
	a.Width = clampExtent(a.Width)
	a.Height = clampExtent(a.Height)
	a.R = wrapDegrees(finite(a.R))

	m.mu.Lock()
	m.attrs = a
	observers := m.observers
	m.mu.Unlock()
	notify(observers, a)
	return a
}

// Snapshot returns the current geometry.
func (m *Model) Snapshot() model.TransformAttrs {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attrs
}

// Observe registers fn to receive every subsequent change.
func (m *Model) Observe(fn Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

func notify(observers []Observer, a model.TransformAttrs) {
	for _, fn := range observers {
		fn(a)
	}
}

func defaults(t *model.Tile) model.TransformAttrs {
	if t == nil {
		return model.TransformAttrs{Width: DefaultWidth, Height: DefaultHeight}
	}
	a := model.TransformAttrs{
		X:      orDefault(t.X, 0),
		Y:      orDefault(t.Y, 0),
		Width:  orDefault(t.Width, DefaultWidth),
		Height: orDefault(t.Height, DefaultHeight),
		R:      orDefault(t.R, 0),
	}
	// A negative extent is present but invalid.
	a.Width = clampExtent(a.Width)
	a.Height = clampExtent(a.Height)
	a.R = wrapDegrees(a.R)
	return a
}

// orDefault treats zero and NaN as absent.
func orDefault(v, def float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return def
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// clampPosition saturates an overflowed coordinate at ±MaxFloat64.
func clampPosition(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

func clampExtent(v float64) float64 {
	if math.IsNaN(v) || v < MinExtent {
		return MinExtent
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

func wrapDegrees(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	r = math.Mod(r, 360)
	if r < 0 {
		r += 360
	}
	// -tiny + 360 rounds to 360.
	if r >= 360 {
		r = 0
	}
	return r
}
