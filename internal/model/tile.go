package model

import (
	"strings"
	"time"
)

// TileStatus is the lifecycle state of a tile.
type TileStatus string

const (
	TileDraft  TileStatus = "draft"
	TileMinted TileStatus = "minted"
)

// IPFSScheme prefixes every content reference in the system.
const IPFSScheme = "ipfs://"

// DeadlineWindow is how long after draft creation a tile's deadline falls.
const DeadlineWindow = 7 * 24 * time.Hour

// Tile is one layer of the collaborative canvas.
// Geometry fields are mutable while the tile is a draft; identity fields
// (TileID, CanvasID, ImageRef, Deadline) are fixed at creation.
type Tile struct {
	TileID   int        `json:"tileId"`
	CanvasID int        `json:"canvasId"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	R        float64    `json:"r"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	ImageRef string     `json:"image,omitempty"`
	Deadline time.Time  `json:"deadline"`
	Status   TileStatus `json:"status"`
	Owner    string     `json:"owner,omitempty"`
}

// HasImage reports whether upload has completed for the tile.
func (t *Tile) HasImage() bool {
	return t != nil && strings.TrimSpace(t.ImageRef) != ""
}

// Geometry returns the tile's transform attributes.
func (t Tile) Geometry() TransformAttrs {
	return TransformAttrs{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height, R: t.R}
}

// WithGeometry returns a copy of the tile with its geometry replaced and
// identity fields preserved.
func (t Tile) WithGeometry(a TransformAttrs) Tile {
	t.X, t.Y, t.Width, t.Height, t.R = a.X, a.Y, a.Width, a.Height, a.R
	return t
}

// TransformAttrs is the mutable geometry of a tile.
type TransformAttrs struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	R      float64 `json:"r"`
}

// ContentRef formats a content id as an ipfs:// reference.
func ContentRef(contentID string) string {
	return IPFSScheme + contentID
}
