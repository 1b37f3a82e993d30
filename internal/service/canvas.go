package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"coopart/internal/apperr"
	"coopart/internal/ledger"
	"coopart/internal/model"
	"coopart/internal/notify"
	"coopart/internal/render"
	"coopart/internal/session"
	"coopart/internal/storage"
	"coopart/internal/transform"
	"coopart/internal/workspace"
)

// CanvasService defines the read side of the canvas and the small ledger
// interactions that are not tied to a draft.
type CanvasService interface {
	// Scene composes committed tiles and, for a signed-in caller, their draft.
	Scene(ctx context.Context, sess session.Session) (*render.Scene, error)

	// Preview writes the scene as PNG.
	Preview(ctx context.Context, sess session.Session, w io.Writer) error

	// Layers returns the ledger's minted layers.
	Layers(ctx context.Context) ([]model.Layer, error)

	// Downvotes returns the canvas downvote counter.
	Downvotes(ctx context.Context) (int64, error)

	// Downvote increments the counter and returns its re-read value.
	Downvote(ctx context.Context, sess session.Session) (int64, error)

	// Greeting returns accountID's greeting, or the caller's when accountID is empty.
	Greeting(ctx context.Context, sess session.Session, accountID string) (string, error)

	// SetGreeting stores the caller's greeting and returns the re-read value.
	SetGreeting(ctx context.Context, sess session.Session, message string) (string, error)

	// Notification returns the caller's notice state.
	Notification(ctx context.Context, sess session.Session) notify.Status

	// DismissNotification hides the caller's notice before its dwell ends.
	DismissNotification(ctx context.Context, sess session.Session) (notify.Status, error)

	// ContentLink returns a short-lived download URL for an ipfs:// reference or bare content id.
	ContentLink(ctx context.Context, ref string) (string, error)
}

type canvasService struct {
	client      *ledger.Client
	content     storage.ContentStore
	renderer    *render.Renderer
	workspaces  *workspace.Registry
	explorerURL string
	linkTTL     time.Duration
	log         *zap.Logger
}

// NewCanvasService constructs a new CanvasService.
func NewCanvasService(client *ledger.Client, content storage.ContentStore, renderer *render.Renderer, workspaces *workspace.Registry, explorerURL string, linkTTL time.Duration, log *zap.Logger) CanvasService {
	if log == nil {
		log = zap.NewNop()
	}
	return &canvasService{
		client:      client,
		content:     content,
		renderer:    renderer,
		workspaces:  workspaces,
		explorerURL: explorerURL,
		linkTTL:     linkTTL,
		log:         log,
	}
}

func (s *canvasService) Scene(ctx context.Context, sess session.Session) (*render.Scene, error) {
	existing, err := s.committedTiles(ctx, sess)
	if err != nil {
		return nil, err
	}
	var (
		draft *model.Tile
		m     *transform.Model
	)
	if sess != nil && sess.IsSignedIn() {
		ws := s.workspaces.Get(sess.AccountID())
		draft, m = ws.Draft(), ws.Model()
	}
	scene := s.renderer.Compose(existing, draft, m)
	return &scene, nil
}

func (s *canvasService) Preview(ctx context.Context, sess session.Session, w io.Writer) error {
	scene, err := s.Scene(ctx, sess)
	if err != nil {
		return err
	}
	return s.renderer.RenderPNG(ctx, *scene, w)
}

// committedTiles rebuilds minted tiles from their metadata documents.
// Layers whose metadata cannot be loaded are skipped.
func (s *canvasService) committedTiles(ctx context.Context, sess session.Session) ([]model.Tile, error) {
	layers, err := s.client.For(sess).GetLayers(ctx)
	if err != nil {
		return nil, err
	}
	tiles := make([]model.Tile, 0, len(layers))
	for _, l := range layers {
		t, err := s.loadLayer(ctx, l)
		if err != nil {
			s.log.Warn("layer metadata unavailable",
				zap.Int("index", l.Index),
				zap.String("token_uri", l.TokenURI),
				zap.Error(err),
			)
			continue
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func (s *canvasService) loadLayer(ctx context.Context, l model.Layer) (model.Tile, error) {
	id, err := storage.ParseRef(l.TokenURI)
	if err != nil {
		return model.Tile{}, err
	}
	raw, err := s.content.Get(ctx, id)
	if err != nil {
		return model.Tile{}, err
	}
	var meta model.Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return model.Tile{}, fmt.Errorf("%w: metadata %s: %v", apperr.ErrDecodeFailure, id, err)
	}
	return meta.Tile(l.OwnerID), nil
}

func (s *canvasService) Layers(ctx context.Context) ([]model.Layer, error) {
	return s.client.For(session.Anonymous).GetLayers(ctx)
}

func (s *canvasService) Downvotes(ctx context.Context) (int64, error) {
	return s.client.For(session.Anonymous).GetDownvotes(ctx)
}

func (s *canvasService) Downvote(ctx context.Context, sess session.Session) (n int64, err error) {
	c := s.client.For(sess)
	// the view is re-read after the change call, successful or not
	defer func() {
		v, verr := c.GetDownvotes(ctx)
		if verr != nil {
			if err == nil {
				err = verr
			}
			return
		}
		n = v
	}()

	if err = c.IncrementDownvotes(ctx); err != nil {
		return 0, err
	}
	s.announce(sess, ledger.MethodIncrementDownvotes)
	return 0, nil
}

func (s *canvasService) Greeting(ctx context.Context, sess session.Session, accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" && sess != nil {
		accountID = sess.AccountID()
	}
	if accountID == "" {
		return "", fmt.Errorf("%w: account id is required", apperr.ErrValidation)
	}
	return s.client.For(sess).GetGreeting(ctx, accountID)
}

func (s *canvasService) SetGreeting(ctx context.Context, sess session.Session, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", apperr.ErrValidation)
	}
	c := s.client.For(sess)
	if err := c.SetGreeting(ctx, message); err != nil {
		return "", err
	}
	s.announce(sess, ledger.MethodSetGreeting)
	return c.GetGreeting(ctx, c.Signer())
}

func (s *canvasService) Notification(_ context.Context, sess session.Session) notify.Status {
	if sess == nil || !sess.IsSignedIn() {
		return notify.Status{State: notify.Hidden}
	}
	return s.workspaces.Get(sess.AccountID()).Notices.Status()
}

func (s *canvasService) DismissNotification(_ context.Context, sess session.Session) (notify.Status, error) {
	if sess == nil || !sess.IsSignedIn() {
		return notify.Status{}, apperr.ErrUnauthorized
	}
	notices := s.workspaces.Get(sess.AccountID()).Notices
	notices.Hide()
	return notices.Status(), nil
}

func (s *canvasService) ContentLink(ctx context.Context, ref string) (string, error) {
	id, err := storage.ParseRef(ref)
	if err != nil {
		return "", err
	}
	return s.content.Link(ctx, id, s.linkTTL)
}

func (s *canvasService) announce(sess session.Session, method string) {
	ws := s.workspaces.Get(sess.AccountID())
	ws.Notices.Trigger(notify.NewNotice(s.explorerURL, sess.AccountID(), s.client.ContractID(), method))
}
