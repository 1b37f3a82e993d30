package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"coopart/internal/apperr"
	"coopart/internal/idempotency"
	"coopart/internal/ledger"
	"coopart/internal/metrics"
	"coopart/internal/model"
	"coopart/internal/session"
	"coopart/internal/storage"
	"coopart/internal/workspace"
)

// claimTTL bounds how long a crashed mint keeps its idempotency key reserved.
const claimTTL = 5 * time.Minute

// MintResult is the outcome of a successful mint.
type MintResult struct {
	Tile     model.Tile `json:"tile"`
	TokenURI string     `json:"token_uri"`
	Replayed bool       `json:"replayed"`
}

// FailureFunc is called with the draft and the error before a failed mint returns.
type FailureFunc func(ctx context.Context, tile model.Tile, err error)

// MintPipeline publishes the draft's metadata and records it on the ledger.
type MintPipeline struct {
	content storage.ContentStore
	client  *ledger.Client
	idem    idempotency.Store
	idemTTL time.Duration
	metrics *metrics.Metrics
	log     *zap.Logger

	OnFailure FailureFunc
}

// NewMint creates a mint pipeline. idem may be nil to disable replay.
func NewMint(content storage.ContentStore, client *ledger.Client, idem idempotency.Store, idemTTL time.Duration, m *metrics.Metrics, log *zap.Logger) *MintPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &MintPipeline{
		content: content,
		client:  client,
		idem:    idem,
		idemTTL: idemTTL,
		metrics: m,
		log:     log,
	}
}

// Run mints ws's draft as sess. Mints in one workspace run one at a time.
// A non-empty key makes the call idempotent per account: a repeated key
// returns the first successful result, and a repeat that arrives while the
// key is claimed elsewhere fails with apperr.ErrInProgress.
func (p *MintPipeline) Run(ctx context.Context, ws *workspace.Workspace, sess session.Session, key string) (MintResult, error) {
	log := p.log.With(zap.String("account_id", ws.AccountID))

	unlock := ws.LockMint()
	defer unlock()

	scoped := ""
	if key != "" && p.idem != nil {
		scoped = ws.AccountID + ":" + key
		if prev, ok := p.replay(ctx, scoped, log); ok {
			return prev, nil
		}

		won, err := p.idem.Claim(ctx, scoped, claimTTL)
		switch {
		case err != nil:
			log.Warn("idempotency claim failed", zap.Error(err))
		case !won:
			p.metrics.ObserveMint(apperr.ErrInProgress)
			return MintResult{}, apperr.ErrInProgress
		default:
			defer func() {
				if err := p.idem.Release(context.WithoutCancel(ctx), scoped); err != nil {
					log.Warn("idempotency release failed", zap.Error(err))
				}
			}()
			// the previous holder may have finished between Get and Claim
			if prev, ok := p.replay(ctx, scoped, log); ok {
				return prev, nil
			}
		}
	}

	res, err := p.mint(ctx, ws, sess)
	p.metrics.ObserveMint(err)
	if err != nil {
		return MintResult{}, err
	}

	if scoped != "" {
		if err := p.idem.Set(ctx, scoped, res, p.idemTTL); err != nil {
			log.Warn("idempotency store failed", zap.Error(err))
		}
	}
	return res, nil
}

func (p *MintPipeline) replay(ctx context.Context, scoped string, log *zap.Logger) (MintResult, bool) {
	var prev MintResult
	err := p.idem.Get(ctx, scoped, &prev)
	switch {
	case err == nil:
		prev.Replayed = true
		log.Info("mint replayed", zap.String("idempotency_key", scoped), zap.String("token_uri", prev.TokenURI))
		return prev, true
	case !errors.Is(err, idempotency.ErrNotFound):
		log.Warn("idempotency lookup failed", zap.Error(err))
	}
	return MintResult{}, false
}

func (p *MintPipeline) mint(ctx context.Context, ws *workspace.Workspace, sess session.Session) (MintResult, error) {
	draft := ws.Draft()
	if draft == nil {
		return MintResult{}, apperr.ErrNoDraft
	}
	if !draft.HasImage() {
		return MintResult{}, fmt.Errorf("%w: tile %d has no uploaded image", apperr.ErrValidation, draft.TileID)
	}
	tile := *draft
	log := p.log.With(zap.String("account_id", ws.AccountID), zap.Int("tile_id", tile.TileID))

	doc, err := json.Marshal(model.NewMetadata(tile))
	if err != nil {
		return MintResult{}, p.fail(ctx, tile, fmt.Errorf("encode metadata: %w", err))
	}
	id, err := p.content.Put(ctx, doc)
	if err != nil {
		return MintResult{}, p.fail(ctx, tile, fmt.Errorf("store metadata: %w", err))
	}
	p.metrics.ObserveContent("metadata", len(doc))
	tokenURI := id.Ref()

	contract := p.client.For(sess)
	if err := contract.MintLayer(ctx, tokenURI); err != nil {
		log.Warn("mint failed", zap.String("token_uri", tokenURI), zap.Error(err))
		return MintResult{}, p.fail(ctx, tile, fmt.Errorf("mint tile %d: %w", tile.TileID, err))
	}

	tile.Status = model.TileMinted
	tile.Owner = contract.Signer()
	ws.ClearIf(tile.TileID)

	log.Info("tile minted", zap.String("token_uri", tokenURI))
	return MintResult{Tile: tile, TokenURI: tokenURI}, nil
}

func (p *MintPipeline) fail(ctx context.Context, tile model.Tile, err error) error {
	if p.OnFailure != nil {
		p.OnFailure(ctx, tile, err)
	}
	return err
}
