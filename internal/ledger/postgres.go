package ledger

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"coopart/internal/model"
)

// PostgresGateway implements Gateway on PostgreSQL. All state is scoped to
// one canvas. It uses database/sql with parameterized queries only.
type PostgresGateway struct {
	db       *sql.DB
	canvasID int
}

// NewPostgresGateway creates a gateway for canvasID.
func NewPostgresGateway(db *sql.DB, canvasID int) *PostgresGateway {
	return &PostgresGateway{db: db, canvasID: canvasID}
}

var _ Gateway = (*PostgresGateway)(nil)

// GetGreeting returns the stored greeting or DefaultGreeting.
func (g *PostgresGateway) GetGreeting(ctx context.Context, accountID string) (string, error) {
	const q = `SELECT message FROM greetings WHERE account_id = $1`
	var msg string
	if err := g.db.QueryRowContext(ctx, q, accountID).Scan(&msg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DefaultGreeting, nil
		}
		return "", err
	}
	return msg, nil
}

// GetDownvotes returns the canvas counter, 0 when it was never incremented.
func (g *PostgresGateway) GetDownvotes(ctx context.Context) (int64, error) {
	const q = `SELECT downvotes FROM canvas_counters WHERE canvas_id = $1`
	var n int64
	if err := g.db.QueryRowContext(ctx, q, g.canvasID).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// GetLayers returns layers in mint order; Index is the position in that order.
func (g *PostgresGateway) GetLayers(ctx context.Context) ([]model.Layer, error) {
	const q = `
		SELECT owner_id, token_uri, downvotes, upvotes, minted_at
		FROM layers
		WHERE canvas_id = $1
		ORDER BY id ASC
	`
	rows, err := g.db.QueryContext(ctx, q, g.canvasID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Layer, 0)
	for rows.Next() {
		var l model.Layer
		if err := rows.Scan(&l.OwnerID, &l.TokenURI, &l.Downvotes, &l.Upvotes, &l.MintedAt); err != nil {
			return nil, err
		}
		l.Index = len(items)
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetGreeting upserts the signer's greeting.
func (g *PostgresGateway) SetGreeting(ctx context.Context, signer, message string) error {
	const q = `
		INSERT INTO greetings (account_id, message, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (account_id) DO UPDATE SET message = EXCLUDED.message, updated_at = now()
	`
	_, err := g.db.ExecContext(ctx, q, signer, message)
	return err
}

// IncrementDownvotes adds one to the counter atomically.
func (g *PostgresGateway) IncrementDownvotes(ctx context.Context, _ string) error {
	const q = `
		INSERT INTO canvas_counters (canvas_id, downvotes)
		VALUES ($1, 1)
		ON CONFLICT (canvas_id) DO UPDATE SET downvotes = canvas_counters.downvotes + 1
	`
	_, err := g.db.ExecContext(ctx, q, g.canvasID)
	return err
}

// MintLayer appends a layer owned by signer.
func (g *PostgresGateway) MintLayer(ctx context.Context, signer, tokenURI string) error {
	if strings.TrimSpace(tokenURI) == "" {
		return ErrEmptyTokenURI
	}
	const q = `INSERT INTO layers (canvas_id, owner_id, token_uri) VALUES ($1, $2, $3)`
	_, err := g.db.ExecContext(ctx, q, g.canvasID, signer, tokenURI)
	return err
}
