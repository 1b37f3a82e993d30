// Package pipeline holds the two tile workflows: upload turns bytes into a
// draft tile, mint turns the draft into a ledger layer.
package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"coopart/internal/apperr"
	"coopart/internal/imaging"
	"coopart/internal/metrics"
	"coopart/internal/model"
	"coopart/internal/storage"
	"coopart/internal/workspace"
)

// MaxTileID bounds generated tile ids. Ids are random and not checked for
// collisions with existing tiles.
const MaxTileID = 1_000_000

// UploadPipeline stores an image and publishes it as the workspace draft.
type UploadPipeline struct {
	content   storage.ContentStore
	canvasID  int
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
	newTileID func() int

	// MaxPixels bounds width*height of accepted images; zero means imaging.DefaultMaxPixels.
	MaxPixels int
}

// NewUpload creates an upload pipeline for canvasID.
func NewUpload(content storage.ContentStore, canvasID int, m *metrics.Metrics, log *zap.Logger) *UploadPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &UploadPipeline{
		content:   content,
		canvasID:  canvasID,
		metrics:   m,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newTileID: func() int { return rand.IntN(MaxTileID) },
	}
}

// Run uploads data and installs the resulting draft unless a later upload in
// ws is still running or has already installed its own. On any failure the
// draft slot is unchanged and later completions of earlier uploads are not
// blocked.
func (p *UploadPipeline) Run(ctx context.Context, ws *workspace.Workspace, data []byte) (model.Tile, error) {
	tile, err := p.run(ctx, ws, data)
	p.metrics.ObserveUpload(err)
	return tile, err
}

func (p *UploadPipeline) run(ctx context.Context, ws *workspace.Workspace, data []byte) (model.Tile, error) {
	gen := ws.Begin()
	tileID := p.newTileID()
	deadline := p.now().Add(model.DeadlineWindow)
	log := p.log.With(zap.String("account_id", ws.AccountID), zap.Int("tile_id", tileID))

	id, err := p.content.Put(ctx, data)
	if err != nil {
		ws.Abandon(gen)
		log.Warn("tile upload failed", zap.Error(err))
		return model.Tile{}, fmt.Errorf("upload tile %d: %w", tileID, err)
	}
	p.metrics.ObserveContent("image", len(data))

	dims, err := imaging.DecodeDimensions(ctx, data, p.MaxPixels)
	if err != nil {
		ws.Abandon(gen)
		log.Warn("tile decode failed", zap.String("content_id", id.String()), zap.Error(err))
		return model.Tile{}, fmt.Errorf("decode tile %d: %w", tileID, err)
	}

	tile := model.Tile{
		TileID:   tileID,
		CanvasID: p.canvasID,
		Width:    float64(dims.Width),
		Height:   float64(dims.Height),
		ImageRef: id.Ref(),
		Deadline: deadline,
		Status:   model.TileDraft,
		Owner:    ws.AccountID,
	}
	if !ws.Publish(gen, tile) {
		log.Info("stale upload discarded", zap.Uint64("generation", gen))
		return tile, fmt.Errorf("upload tile %d: %w", tileID, apperr.ErrSuperseded)
	}

	log.Info("draft tile created",
		zap.String("image", tile.ImageRef),
		zap.String("format", dims.Format),
		zap.Int("width", dims.Width),
		zap.Int("height", dims.Height),
	)
	return tile, nil
}
