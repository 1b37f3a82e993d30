package workspace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopart/internal/model"
	"coopart/internal/transform"
)

func TestDraftSlot_Generations(t *testing.T) {
	var s DraftSlot

	first := s.Begin()
	second := s.Begin()

	assert.True(t, s.Publish(second, model.Tile{TileID: 2}))
	assert.False(t, s.Publish(first, model.Tile{TileID: 1}))

	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, 2, cur.TileID)
}

func TestDraftSlot_FailedNewerUploadStepsAside(t *testing.T) {
	var s DraftSlot

	first := s.Begin()
	second := s.Begin()
	s.Abandon(second)

	assert.True(t, s.Publish(first, model.Tile{TileID: 1}))
	require.NotNil(t, s.Current())
	assert.Equal(t, 1, s.Current().TileID)

	// a newer pending upload still wins over an older completion
	third := s.Begin()
	fourth := s.Begin()
	assert.False(t, s.Publish(third, model.Tile{TileID: 3}))
	assert.True(t, s.Publish(fourth, model.Tile{TileID: 4}))
	assert.False(t, s.Publish(first, model.Tile{TileID: 1}))
	assert.Equal(t, 4, s.Current().TileID)
}

func TestDraftSlot_UpdateAndClear(t *testing.T) {
	var s DraftSlot
	assert.Nil(t, s.Current())
	assert.False(t, s.Update(model.Tile{TileID: 1}))

	s.Publish(s.Begin(), model.Tile{TileID: 7, Width: 10, Height: 10})

	assert.False(t, s.Update(model.Tile{TileID: 8, Width: 50}))
	assert.True(t, s.Update(model.Tile{TileID: 7, Width: 50, Height: 10}))
	assert.Equal(t, 50.0, s.Current().Width)

	cur := s.Current()
	cur.Width = 999
	assert.Equal(t, 50.0, s.Current().Width)

	assert.False(t, s.ClearIf(8))
	assert.True(t, s.ClearIf(7))
	assert.Nil(t, s.Current())
}

func TestDraftSlot_ConcurrentPublishKeepsNewest(t *testing.T) {
	var s DraftSlot
	gens := make([]uint64, 20)
	for i := range gens {
		gens[i] = s.Begin()
	}

	var wg sync.WaitGroup
	for i, g := range gens {
		wg.Add(1)
		go func(id int, g uint64) {
			defer wg.Done()
			s.Publish(g, model.Tile{TileID: id})
		}(i, g)
	}
	wg.Wait()

	require.NotNil(t, s.Current())
	assert.Equal(t, len(gens)-1, s.Current().TileID)
}

func TestWorkspace_PublishSyncsModel(t *testing.T) {
	w := New("alice", nil)

	w.Model().ApplyGesture(transform.Gesture{Kind: transform.GestureMove, DX: 5})
	require.True(t, w.Publish(w.Begin(), model.Tile{TileID: 1, Width: 200, Height: 150}))
	assert.Equal(t, model.TransformAttrs{Width: 200, Height: 150}, w.Model().Snapshot())

	w.Model().ApplyGesture(transform.Gesture{Kind: transform.GestureMove, DX: 5})
	assert.True(t, w.Update(model.Tile{TileID: 1, X: 5, Width: 200, Height: 150}))
	assert.Equal(t, 5.0, w.Model().Snapshot().X)

	assert.True(t, w.ClearIf(1))
	assert.Nil(t, w.Draft())
	assert.Equal(t, float64(transform.DefaultWidth), w.Model().Snapshot().Width)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(0, nil)
	a := r.Get("alice")
	assert.Same(t, a, r.Get("alice"))
	assert.NotSame(t, a, r.Get("bob"))
	assert.Equal(t, 2, r.Len())
	require.NotNil(t, a.Notices)
}
