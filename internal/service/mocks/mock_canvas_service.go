package mocks

import (
	"context"
	"io"

	"coopart/internal/model"
	"coopart/internal/notify"
	"coopart/internal/render"
	"coopart/internal/session"
	"github.com/stretchr/testify/mock"
)

type MockCanvasService struct {
	mock.Mock
}

func (m *MockCanvasService) Scene(ctx context.Context, sess session.Session) (*render.Scene, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*render.Scene), args.Error(1)
}

func (m *MockCanvasService) Preview(ctx context.Context, sess session.Session, w io.Writer) error {
	args := m.Called(ctx, sess, w)
	return args.Error(0)
}

func (m *MockCanvasService) Layers(ctx context.Context) ([]model.Layer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Layer), args.Error(1)
}

func (m *MockCanvasService) Downvotes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCanvasService) Downvote(ctx context.Context, sess session.Session) (int64, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCanvasService) Greeting(ctx context.Context, sess session.Session, accountID string) (string, error) {
	args := m.Called(ctx, sess, accountID)
	return args.String(0), args.Error(1)
}

func (m *MockCanvasService) SetGreeting(ctx context.Context, sess session.Session, message string) (string, error) {
	args := m.Called(ctx, sess, message)
	return args.String(0), args.Error(1)
}

func (m *MockCanvasService) Notification(ctx context.Context, sess session.Session) notify.Status {
	args := m.Called(ctx, sess)
	return args.Get(0).(notify.Status)
}

func (m *MockCanvasService) DismissNotification(ctx context.Context, sess session.Session) (notify.Status, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).(notify.Status), args.Error(1)
}

func (m *MockCanvasService) ContentLink(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}
