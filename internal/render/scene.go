// Package render composes the canvas scene: committed tiles are read-only,
// the draft (if any) is the single editable tile and carries selection
// handles. Gestures reach the transform model only through the renderer.
package render

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"coopart/internal/apperr"
	"coopart/internal/config"
	"coopart/internal/model"
	"coopart/internal/storage"
	"coopart/internal/transform"
)

// RotateAnchorOffset is the distance of the rotation handle above the tile.
const RotateAnchorOffset = 50

// SceneTile is a tile as drawn, with its image resolved for display.
type SceneTile struct {
	model.Tile
	Src string `json:"src"`
}

// Handle is a selection anchor in canvas coordinates.
type Handle struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// EditableTile is the draft with its selection handles.
type EditableTile struct {
	SceneTile
	Handles []Handle `json:"handles"`
}

// Scene is everything drawn on the canvas at one moment.
type Scene struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Tiles    []SceneTile   `json:"tiles"`
	Editable *EditableTile `json:"editable,omitempty"`
}

// ChangeFunc receives the full draft after every geometry change.
type ChangeFunc func(model.Tile)

// Renderer builds scenes for a fixed viewport.
type Renderer struct {
	width      int
	height     int
	gatewayURL string
	maxPixels  int
	content    storage.ContentStore
	log        *zap.Logger
}

// New creates a renderer. content is only needed for RenderPNG.
func New(cfg config.CanvasConfig, content storage.ContentStore, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	gw := cfg.GatewayURL
	if gw != "" && !strings.HasSuffix(gw, "/") {
		gw += "/"
	}
	return &Renderer{
		width:      cfg.Width,
		height:     cfg.Height,
		gatewayURL: gw,
		maxPixels:  cfg.MaxPixels,
		content:    content,
		log:        log,
	}
}

// ResolveURL rewrites an ipfs:// reference to the gateway. Other values are
// returned unchanged.
func (r *Renderer) ResolveURL(ref string) string {
	if !strings.HasPrefix(ref, model.IPFSScheme) || r.gatewayURL == "" {
		return ref
	}
	return r.gatewayURL + strings.TrimPrefix(ref, model.IPFSScheme)
}

// Compose lays out existing tiles in order, then the draft. The draft's
// geometry comes from m when m is tracking that draft.
func (r *Renderer) Compose(existing []model.Tile, draft *model.Tile, m *transform.Model) Scene {
	s := Scene{Width: r.width, Height: r.height, Tiles: make([]SceneTile, 0, len(existing))}
	for _, t := range existing {
		s.Tiles = append(s.Tiles, SceneTile{Tile: t, Src: r.ResolveURL(t.ImageRef)})
	}
	if draft == nil {
		return s
	}

	t := *draft
	if m != nil {
		m.Sync(draft)
		t = t.WithGeometry(m.Snapshot())
	}
	s.Editable = &EditableTile{
		SceneTile: SceneTile{Tile: t, Src: r.ResolveURL(t.ImageRef)},
		Handles:   Handles(t.Geometry()),
	}
	return s
}

// ApplyGesture forwards g to the model for draft and reports the updated
// tile to onChange.
func (r *Renderer) ApplyGesture(draft *model.Tile, m *transform.Model, g transform.Gesture, onChange ChangeFunc) (model.Tile, error) {
	if draft == nil {
		return model.Tile{}, apperr.ErrNoDraft
	}
	m.Sync(draft)
	updated := draft.WithGeometry(m.ApplyGesture(g))
	if onChange != nil {
		onChange(updated)
	}
	return updated, nil
}

// SetAttrs applies a transform-end event with absolute geometry.
func (r *Renderer) SetAttrs(draft *model.Tile, m *transform.Model, a model.TransformAttrs, onChange ChangeFunc) (model.Tile, error) {
	if draft == nil {
		return model.Tile{}, apperr.ErrNoDraft
	}
	m.Sync(draft)
	updated := draft.WithGeometry(m.SetAttrs(a))
	if onChange != nil {
		onChange(updated)
	}
	return updated, nil
}

// Handles returns the eight resize anchors and the rotation anchor for a
// tile rotated about its (x, y) origin.
func Handles(a model.TransformAttrs) []Handle {
	w, h := a.Width, a.Height
	local := []Handle{
		{"top-left", 0, 0},
		{"top-center", w / 2, 0},
		{"top-right", w, 0},
		{"middle-right", w, h / 2},
		{"bottom-right", w, h},
		{"bottom-center", w / 2, h},
		{"bottom-left", 0, h},
		{"middle-left", 0, h / 2},
		{"rotater", w / 2, -RotateAnchorOffset},
	}
	sin, cos := math.Sincos(a.R * math.Pi / 180)
	for i, p := range local {
		local[i].X = a.X + p.X*cos - p.Y*sin
		local[i].Y = a.Y + p.X*sin + p.Y*cos
	}
	return local
}
