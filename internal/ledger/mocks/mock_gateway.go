package mocks

import (
	"context"

	"coopart/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetGreeting(ctx context.Context, accountID string) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) GetDownvotes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGateway) GetLayers(ctx context.Context) ([]model.Layer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Layer), args.Error(1)
}

func (m *MockGateway) SetGreeting(ctx context.Context, signer, message string) error {
	args := m.Called(ctx, signer, message)
	return args.Error(0)
}

func (m *MockGateway) IncrementDownvotes(ctx context.Context, signer string) error {
	args := m.Called(ctx, signer)
	return args.Error(0)
}

func (m *MockGateway) MintLayer(ctx context.Context, signer, tokenURI string) error {
	args := m.Called(ctx, signer, tokenURI)
	return args.Error(0)
}
