package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cardapi/internal/model"
	"cardapi/internal/storage"
)

type MockStager struct {
	mock.Mock
}

func (m *MockStager) Stage(ctx context.Context, r io.Reader, originalName, contentType string) (model.StagedFile, error) {
	args := m.Called(ctx, r, originalName, contentType)
	return args.Get(0).(model.StagedFile), args.Error(1)
}

func (m *MockStager) Resolve(ctx context.Context, token string) (storage.StagedEntry, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(storage.StagedEntry), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) MoveStaged(ctx context.Context, stagedPath, cardID, itemID, filename string) error {
	args := m.Called(ctx, stagedPath, cardID, itemID, filename)
	return args.Error(0)
}

func (m *MockFileStore) Write(ctx context.Context, r io.Reader, cardID, itemID, filename string) (int64, error) {
	args := m.Called(ctx, r, cardID, itemID, filename)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileStore) Root() string {
	args := m.Called()
	return args.String(0)
}
