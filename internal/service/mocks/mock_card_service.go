package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cardapi/internal/model"
	"cardapi/internal/service"
)

type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) Create(ctx context.Context, in service.CardInput) (*model.Card, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardService) Update(ctx context.Context, cardID string, fields map[string]any) (*service.UpdateResult, error) {
	args := m.Called(ctx, cardID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UpdateResult), args.Error(1)
}

func (m *MockCardService) List(ctx context.Context, f service.CardFilter) ([]model.Card, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardService) AddItem(ctx context.Context, cardID string, in service.ItemInput) (*model.Item, error) {
	args := m.Called(ctx, cardID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockCardService) ListItems(ctx context.Context, cardID string) ([]model.Item, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockCardService) UpdateItem(ctx context.Context, cardID, itemID string, fields map[string]any) (*service.UpdateResult, error) {
	args := m.Called(ctx, cardID, itemID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UpdateResult), args.Error(1)
}
