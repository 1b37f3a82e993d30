package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTile_WithGeometryPreservesIdentity(t *testing.T) {
	deadline := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)
	tile := Tile{TileID: 42, CanvasID: 1, ImageRef: "ipfs://abc", Deadline: deadline, Status: TileDraft, Width: 10, Height: 10}

	got := tile.WithGeometry(TransformAttrs{X: 5, Y: 6, Width: 7, Height: 8, R: 9})

	assert.Equal(t, 42, got.TileID)
	assert.Equal(t, "ipfs://abc", got.ImageRef)
	assert.Equal(t, deadline, got.Deadline)
	assert.Equal(t, TransformAttrs{X: 5, Y: 6, Width: 7, Height: 8, R: 9}, got.Geometry())
	assert.Equal(t, float64(10), tile.Width, "receiver must not change")
}

func TestTile_HasImage(t *testing.T) {
	var nilTile *Tile
	assert.False(t, nilTile.HasImage())
	assert.False(t, (&Tile{ImageRef: "  "}).HasImage())
	assert.True(t, (&Tile{ImageRef: ContentRef("bafy")}).HasImage())
}

func TestMetadata_RoundTripToTile(t *testing.T) {
	deadline := time.Date(2026, 10, 26, 12, 0, 0, 0, time.UTC)
	tile := Tile{TileID: 7, CanvasID: 1, X: 1, Y: 2, R: 30, Width: 200, Height: 150, ImageRef: "ipfs://img", Deadline: deadline}

	md := NewMetadata(tile)
	assert.Equal(t, MetadataName, md.Name)
	assert.Equal(t, "2026-10-26T12:00:00Z", md.Deadline)

	back := md.Tile("alice.near")
	assert.Equal(t, TileMinted, back.Status)
	assert.Equal(t, "alice.near", back.Owner)
	assert.Equal(t, tile.Geometry(), back.Geometry())
	assert.True(t, deadline.Equal(back.Deadline))
}
