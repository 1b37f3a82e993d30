package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"coopart/internal/model"
)

// MemoryGateway implements Gateway in process. State is lost on restart.
type MemoryGateway struct {
	mu        sync.RWMutex
	greetings map[string]string
	downvotes int64
	layers    []model.Layer
	now       func() time.Time
}

// NewMemoryGateway constructs an empty ledger.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		greetings: make(map[string]string),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ Gateway = (*MemoryGateway)(nil)

func (m *MemoryGateway) GetGreeting(_ context.Context, accountID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if msg, ok := m.greetings[accountID]; ok {
		return msg, nil
	}
	return DefaultGreeting, nil
}

func (m *MemoryGateway) GetDownvotes(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.downvotes, nil
}

func (m *MemoryGateway) GetLayers(_ context.Context) ([]model.Layer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Layer, len(m.layers))
	copy(out, m.layers)
	return out, nil
}

func (m *MemoryGateway) SetGreeting(_ context.Context, signer, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.greetings[signer] = message
	return nil
}

func (m *MemoryGateway) IncrementDownvotes(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downvotes++
	return nil
}

func (m *MemoryGateway) MintLayer(_ context.Context, signer, tokenURI string) error {
	if strings.TrimSpace(tokenURI) == "" {
		return ErrEmptyTokenURI
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layers = append(m.layers, model.Layer{
		Index:    len(m.layers),
		OwnerID:  signer,
		TokenURI: tokenURI,
		MintedAt: m.now(),
	})
	return nil
}
