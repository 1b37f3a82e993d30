package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopart/internal/apperr"
	"coopart/internal/model"
)

func TestModel_InitializeDefaults(t *testing.T) {
	tests := []struct {
		name string
		tile *model.Tile
		want model.TransformAttrs
	}{
		{
			name: "nil tile",
			tile: nil,
			want: model.TransformAttrs{X: 0, Y: 0, Width: 100, Height: 100, R: 0},
		},
		{
			name: "zero fields fall back",
			tile: &model.Tile{TileID: 1},
			want: model.TransformAttrs{X: 0, Y: 0, Width: 100, Height: 100, R: 0},
		},
		{
			name: "explicit origin is indistinguishable from unset",
			tile: &model.Tile{TileID: 2, X: 0, Y: 0, R: 0, Width: 200, Height: 150},
			want: model.TransformAttrs{X: 0, Y: 0, Width: 200, Height: 150, R: 0},
		},
		{
			name: "present values are kept",
			tile: &model.Tile{TileID: 3, X: 12.5, Y: -4, R: 45, Width: 30, Height: 40},
			want: model.TransformAttrs{X: 12.5, Y: -4, Width: 30, Height: 40, R: 45},
		},
		{
			name: "NaN counts as missing",
			tile: &model.Tile{TileID: 4, X: math.NaN(), Width: math.NaN(), Height: 10},
			want: model.TransformAttrs{X: 0, Y: 0, Width: 100, Height: 10, R: 0},
		},
		{
			name: "negative extent clamps",
			tile: &model.Tile{TileID: 5, Width: -20, Height: 0.5},
			want: model.TransformAttrs{Width: 1, Height: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.Initialize(tt.tile)
			assert.Equal(t, tt.want, m.Snapshot())
		})
	}
}

func TestModel_ResizeNeverDropsBelowMinimum(t *testing.T) {
	m := NewModel()
	m.Initialize(&model.Tile{TileID: 1, Width: 200, Height: 150})

	for _, delta := range []float64{-199.5, -200, -1000, math.Inf(-1)} {
		got := m.ApplyGesture(Gesture{Kind: GestureResize, DW: delta, DH: delta})
		assert.GreaterOrEqual(t, got.Width, float64(MinExtent))
		assert.GreaterOrEqual(t, got.Height, float64(MinExtent))
	}

	got := m.ApplyGesture(Gesture{Kind: GestureResize, DW: 9, DH: 4})
	assert.Equal(t, float64(10), got.Width)
	assert.Equal(t, float64(5), got.Height)
}

func TestModel_RotationWraps(t *testing.T) {
	deltas := []float64{0, 90, 359.999, 360, 720, -1, -360, -725.5, 1e9, -1e-13}
	for _, d := range deltas {
		m := NewModel()
		got := m.ApplyGesture(Gesture{Kind: GestureRotate, DR: d})
		assert.GreaterOrEqual(t, got.R, float64(0), "delta %v", d)
		assert.Less(t, got.R, float64(360), "delta %v", d)
	}

	m := NewModel()
	m.ApplyGesture(Gesture{Kind: GestureRotate, DR: 350})
	got := m.ApplyGesture(Gesture{Kind: GestureRotate, DR: 20})
	assert.InDelta(t, 10, got.R, 1e-9)

	got = m.ApplyGesture(Gesture{Kind: GestureRotate, DR: -30})
	assert.InDelta(t, 340, got.R, 1e-9)
}

func TestModel_MoveAndObservers(t *testing.T) {
	m := NewModel()
	var seen []model.TransformAttrs
	m.Observe(func(a model.TransformAttrs) { seen = append(seen, a) })

	m.ApplyGesture(Gesture{Kind: GestureMove, DX: 10, DY: -5})
	m.ApplyGesture(Gesture{Kind: GestureMove, DX: 2.5, DY: math.NaN()})

	require.Len(t, seen, 2)
	assert.Equal(t, m.Snapshot(), seen[1])
	assert.Equal(t, 12.5, seen[1].X)
	assert.Equal(t, float64(-5), seen[1].Y)
}

func TestModel_MoveSaturatesOnOverflow(t *testing.T) {
	m := NewModel()
	m.ApplyGesture(Gesture{Kind: GestureMove, DX: 1e308, DY: -1e308})
	m.ApplyGesture(Gesture{Kind: GestureMove, DX: 1e308, DY: -1e308})

	got := m.Snapshot()
	assert.Equal(t, math.MaxFloat64, got.X)
	assert.Equal(t, -math.MaxFloat64, got.Y)

	m.ApplyGesture(Gesture{Kind: GestureMove, DX: -1e308})
	assert.False(t, math.IsInf(m.Snapshot().X, 0))
	assert.Less(t, m.Snapshot().X, math.MaxFloat64)
}

func TestModel_SyncResetsOnlyOnIdentityChange(t *testing.T) {
	m := NewModel()
	first := &model.Tile{TileID: 1, Width: 200, Height: 150}
	assert.True(t, m.Sync(first))

	m.ApplyGesture(Gesture{Kind: GestureMove, DX: 30})
	echoed := first.WithGeometry(m.Snapshot())
	assert.False(t, m.Sync(&echoed))
	assert.Equal(t, float64(30), m.Snapshot().X)

	second := &model.Tile{TileID: 2, Width: 50, Height: 60}
	assert.True(t, m.Sync(second))
	assert.Equal(t, model.TransformAttrs{Width: 50, Height: 60}, m.Snapshot())

	assert.True(t, m.Sync(nil))
	assert.False(t, m.Sync(nil))
	assert.Equal(t, model.TransformAttrs{Width: 100, Height: 100}, m.Snapshot())
}

func TestModel_SetAttrsClamps(t *testing.T) {
	m := NewModel()
	got := m.SetAttrs(model.TransformAttrs{X: 3, Y: 4, Width: 0, Height: -2, R: -90})
	assert.Equal(t, model.TransformAttrs{X: 3, Y: 4, Width: 1, Height: 1, R: 270}, got)
}

func TestParseGestureKind(t *testing.T) {
	k, err := ParseGestureKind(" Rotate ")
	require.NoError(t, err)
	assert.Equal(t, GestureRotate, k)

	_, err = ParseGestureKind("skew")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
