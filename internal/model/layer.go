package model

import "time"

// Layer is the ledger's record of a minted tile.
type Layer struct {
	Index     int       `json:"index"`
	OwnerID   string    `json:"owner_id"`
	TokenURI  string    `json:"token_uri"`
	Downvotes int       `json:"downvotes"`
	Upvotes   int       `json:"upvotes"`
	MintedAt  time.Time `json:"minted_at"`
}
