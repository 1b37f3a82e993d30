// Package ledger is the boundary to the shared append-only ledger.
//
// View calls read state and never change it. Change calls are signed by an
// account and may fail on session expiry or network faults; callers must
// re-query the matching view afterwards instead of trusting a local guess.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"coopart/internal/apperr"
	"coopart/internal/model"
)

// DefaultGreeting is returned for accounts that never set one.
const DefaultGreeting = "Hello"

// Method names as exposed by the contract.
const (
	MethodGetGreeting        = "get_greeting"
	MethodGetDownvotes       = "get_downvotes"
	MethodGetLayers          = "get_layers"
	MethodSetGreeting        = "set_greeting"
	MethodIncrementDownvotes = "increment_downvotes"
	MethodMintLayer          = "mint_layer"
)

// ErrSessionExpired is the session-expired variant of apperr.ErrLedgerCall.
var ErrSessionExpired = fmt.Errorf("%w: session expired", apperr.ErrLedgerCall)

// ErrEmptyTokenURI is returned by MintLayer for a blank token URI.
var ErrEmptyTokenURI = errors.New("token uri is required")

// Gateway is the raw contract surface. Change methods take the signing account.
type Gateway interface {
	GetGreeting(ctx context.Context, accountID string) (string, error)
	GetDownvotes(ctx context.Context) (int64, error)
	GetLayers(ctx context.Context) ([]model.Layer, error)

	SetGreeting(ctx context.Context, signer, message string) error
	IncrementDownvotes(ctx context.Context, signer string) error
	MintLayer(ctx context.Context, signer, tokenURI string) error
}
