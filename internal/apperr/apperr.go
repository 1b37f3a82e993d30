// Package apperr holds the failure classes shared by the tile pipelines.
// Lower layers wrap one of these with fmt.Errorf("%w: ...") so callers can
// classify a failure with errors.Is without knowing which backend produced it.
package apperr

import "errors"

var (
	// ErrStorageUnavailable means a content-addressed put or get failed.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrDecodeFailure means an uploaded image could not be decoded for its dimensions.
	ErrDecodeFailure = errors.New("image decode failed")
	// ErrLedgerCall means a ledger view or change call failed.
	ErrLedgerCall = errors.New("ledger call failed")
	// ErrValidation means the input was rejected before any remote call.
	ErrValidation = errors.New("validation failed")

	ErrNoDraft      = errors.New("no draft tile")
	ErrSuperseded   = errors.New("superseded by a newer draft")
	ErrUnauthorized = errors.New("not signed in")

	// ErrInProgress means another request holding the same idempotency key is still minting.
	ErrInProgress = errors.New("mint already in progress")
)

// ReauthHint is shown to users after a failed change call.
const ReauthHint = "Something went wrong! Maybe you need to sign out and back in?"
