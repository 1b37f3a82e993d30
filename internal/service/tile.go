package service

import (
	"context"
	"fmt"

	"coopart/internal/apperr"
	"coopart/internal/ledger"
	"coopart/internal/model"
	"coopart/internal/notify"
	"coopart/internal/pipeline"
	"coopart/internal/render"
	"coopart/internal/session"
	"coopart/internal/transform"
	"coopart/internal/workspace"
)

// TileService defines the use cases around the caller's draft tile.
type TileService interface {
	// Upload stores the image and makes it the caller's draft.
	Upload(ctx context.Context, sess session.Session, data []byte) (*model.Tile, error)

	// Draft returns the caller's current draft.
	Draft(ctx context.Context, sess session.Session) (*model.Tile, error)

	// ApplyGesture applies a relative move, resize or rotate to the draft.
	ApplyGesture(ctx context.Context, sess session.Session, g transform.Gesture) (*model.Tile, error)

	// SetTransform replaces the draft geometry with absolute values.
	SetTransform(ctx context.Context, sess session.Session, a model.TransformAttrs) (*model.Tile, error)

	// Mint records the draft on the ledger. key, when set, makes retries safe.
	Mint(ctx context.Context, sess session.Session, key string) (*pipeline.MintResult, error)
}

type tileService struct {
	workspaces  *workspace.Registry
	upload      *pipeline.UploadPipeline
	mint        *pipeline.MintPipeline
	renderer    *render.Renderer
	contractID  string
	explorerURL string
}

// NewTileService constructs a new TileService.
func NewTileService(workspaces *workspace.Registry, upload *pipeline.UploadPipeline, mint *pipeline.MintPipeline, renderer *render.Renderer, contractID, explorerURL string) TileService {
	return &tileService{
		workspaces:  workspaces,
		upload:      upload,
		mint:        mint,
		renderer:    renderer,
		contractID:  contractID,
		explorerURL: explorerURL,
	}
}

func (s *tileService) workspace(sess session.Session) (*workspace.Workspace, error) {
	if sess == nil || !sess.IsSignedIn() {
		return nil, apperr.ErrUnauthorized
	}
	return s.workspaces.Get(sess.AccountID()), nil
}

func (s *tileService) Upload(ctx context.Context, sess session.Session, data []byte) (*model.Tile, error) {
	ws, err := s.workspace(sess)
	if err != nil {
		return nil, err
	}
	tile, err := s.upload.Run(ctx, ws, data)
	if err != nil {
		return nil, err
	}
	return &tile, nil
}

func (s *tileService) Draft(ctx context.Context, sess session.Session) (*model.Tile, error) {
	ws, err := s.workspace(sess)
	if err != nil {
		return nil, err
	}
	draft := ws.Draft()
	if draft == nil {
		return nil, apperr.ErrNoDraft
	}
	out := draft.WithGeometry(ws.Model().Snapshot())
	return &out, nil
}

func (s *tileService) ApplyGesture(ctx context.Context, sess session.Session, g transform.Gesture) (*model.Tile, error) {
	kind, err := transform.ParseGestureKind(string(g.Kind))
	if err != nil {
		return nil, err
	}
	g.Kind = kind
	ws, err := s.workspace(sess)
	if err != nil {
		return nil, err
	}
	tile, err := s.renderer.ApplyGesture(ws.Draft(), ws.Model(), g, func(t model.Tile) { ws.Update(t) })
	if err != nil {
		return nil, err
	}
	return &tile, nil
}

func (s *tileService) SetTransform(ctx context.Context, sess session.Session, a model.TransformAttrs) (*model.Tile, error) {
	ws, err := s.workspace(sess)
	if err != nil {
		return nil, err
	}
	tile, err := s.renderer.SetAttrs(ws.Draft(), ws.Model(), a, func(t model.Tile) { ws.Update(t) })
	if err != nil {
		return nil, err
	}
	return &tile, nil
}

func (s *tileService) Mint(ctx context.Context, sess session.Session, key string) (*pipeline.MintResult, error) {
	ws, err := s.workspace(sess)
	if err != nil {
		return nil, err
	}
	res, err := s.mint.Run(ctx, ws, sess, key)
	if err != nil {
		return nil, fmt.Errorf("mint: %w", err)
	}
	if !res.Replayed {
		ws.Notices.Trigger(notify.NewNotice(s.explorerURL, sess.AccountID(), s.contractID, ledger.MethodMintLayer))
	}
	return &res, nil
}
