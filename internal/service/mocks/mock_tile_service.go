package mocks

import (
	"context"

	"coopart/internal/model"
	"coopart/internal/pipeline"
	"coopart/internal/session"
	"coopart/internal/transform"
	"github.com/stretchr/testify/mock"
)

type MockTileService struct {
	mock.Mock
}

func (m *MockTileService) Upload(ctx context.Context, sess session.Session, data []byte) (*model.Tile, error) {
	args := m.Called(ctx, sess, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tile), args.Error(1)
}

func (m *MockTileService) Draft(ctx context.Context, sess session.Session) (*model.Tile, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tile), args.Error(1)
}

func (m *MockTileService) ApplyGesture(ctx context.Context, sess session.Session, g transform.Gesture) (*model.Tile, error) {
	args := m.Called(ctx, sess, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tile), args.Error(1)
}

func (m *MockTileService) SetTransform(ctx context.Context, sess session.Session, a model.TransformAttrs) (*model.Tile, error) {
	args := m.Called(ctx, sess, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tile), args.Error(1)
}

func (m *MockTileService) Mint(ctx context.Context, sess session.Session, key string) (*pipeline.MintResult, error) {
	args := m.Called(ctx, sess, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.MintResult), args.Error(1)
}
