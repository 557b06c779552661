package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cardapi/internal/model"
)

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Load(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) Save(ctx context.Context, cards []model.Card) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}
