package model

import "time"

const (
	MetadataName        = "CoopArt layer"
	MetadataDescription = "A layer of the CoopArt cooperative canvas."
)

// Metadata is the document minted for each tile. It is stored in the
// content-addressed store and referenced from the ledger by its token URI.
type Metadata struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	TileID      int     `json:"tileId"`
	CanvasID    int     `json:"canvasId"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	R           float64 `json:"r"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Deadline    string  `json:"deadline"`
}

// NewMetadata builds the metadata document for a tile.
func NewMetadata(t Tile) Metadata {
	return Metadata{
		Name:        MetadataName,
		Description: MetadataDescription,
		Image:       t.ImageRef,
		TileID:      t.TileID,
		CanvasID:    t.CanvasID,
		X:           t.X,
		Y:           t.Y,
		R:           t.R,
		Width:       t.Width,
		Height:      t.Height,
		Deadline:    t.Deadline.UTC().Format(time.RFC3339),
	}
}

// Tile rebuilds a committed tile from a minted metadata document.
// An unparsable deadline is left as the zero time.
func (m Metadata) Tile(owner string) Tile {
	deadline, _ := time.Parse(time.RFC3339, m.Deadline)
	return Tile{
		TileID:   m.TileID,
		CanvasID: m.CanvasID,
		X:        m.X,
		Y:        m.Y,
		R:        m.R,
		Width:    m.Width,
		Height:   m.Height,
		ImageRef: m.Image,
		Deadline: deadline,
		Status:   TileMinted,
		Owner:    owner,
	}
}
