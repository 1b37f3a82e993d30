package ledger

import (
	"context"
	"errors"
	"fmt"

	"coopart/internal/apperr"
	"coopart/internal/model"
	"coopart/internal/session"
)

// CallObserver is told the outcome of every contract call.
type CallObserver func(method string, err error)

// Client wraps a Gateway with the contract identity and call accounting.
type Client struct {
	gw         Gateway
	contractID string
	observe    CallObserver
}

// NewClient builds a Client. observe may be nil.
func NewClient(gw Gateway, contractID string, observe CallObserver) *Client {
	if observe == nil {
		observe = func(string, error) {}
	}
	return &Client{gw: gw, contractID: contractID, observe: observe}
}

// ContractID returns the id of the contract the client talks to.
func (c *Client) ContractID() string { return c.contractID }

// For binds the client to the caller's session.
func (c *Client) For(s session.Session) *Contract {
	if s == nil {
		s = session.Anonymous
	}
	return &Contract{client: c, session: s}
}

// Contract is a Client bound to one session. Change calls refuse to run
// without a signed-in session.
type Contract struct {
	client  *Client
	session session.Session
}

// ContractID returns the id of the bound contract.
func (c *Contract) ContractID() string { return c.client.contractID }

// Signer returns the account that signs change calls.
func (c *Contract) Signer() string { return c.session.AccountID() }

// GetGreeting returns accountID's greeting.
func (c *Contract) GetGreeting(ctx context.Context, accountID string) (string, error) {
	msg, err := c.client.gw.GetGreeting(ctx, accountID)
	return msg, c.done(MethodGetGreeting, err)
}

// GetDownvotes returns the canvas downvote counter.
func (c *Contract) GetDownvotes(ctx context.Context) (int64, error) {
	n, err := c.client.gw.GetDownvotes(ctx)
	return n, c.done(MethodGetDownvotes, err)
}

// GetLayers returns every minted layer in mint order.
func (c *Contract) GetLayers(ctx context.Context) ([]model.Layer, error) {
	layers, err := c.client.gw.GetLayers(ctx)
	return layers, c.done(MethodGetLayers, err)
}

// SetGreeting stores message as the signer's greeting.
func (c *Contract) SetGreeting(ctx context.Context, message string) error {
	if err := c.signed(MethodSetGreeting); err != nil {
		return err
	}
	return c.done(MethodSetGreeting, c.client.gw.SetGreeting(ctx, c.Signer(), message))
}

// IncrementDownvotes adds one to the canvas counter.
func (c *Contract) IncrementDownvotes(ctx context.Context) error {
	if err := c.signed(MethodIncrementDownvotes); err != nil {
		return err
	}
	return c.done(MethodIncrementDownvotes, c.client.gw.IncrementDownvotes(ctx, c.Signer()))
}

// MintLayer appends a layer owned by the signer.
func (c *Contract) MintLayer(ctx context.Context, tokenURI string) error {
	if err := c.signed(MethodMintLayer); err != nil {
		return err
	}
	return c.done(MethodMintLayer, c.client.gw.MintLayer(ctx, c.Signer(), tokenURI))
}

func (c *Contract) signed(method string) error {
	if c.session.IsSignedIn() {
		return nil
	}
	err := fmt.Errorf("%s: %w", method, ErrSessionExpired)
	c.client.observe(method, err)
	return err
}

func (c *Contract) done(method string, err error) error {
	if err != nil && !errors.Is(err, apperr.ErrLedgerCall) {
		err = fmt.Errorf("%w: %s: %w", apperr.ErrLedgerCall, method, err)
	}
	c.client.observe(method, err)
	return err
}
