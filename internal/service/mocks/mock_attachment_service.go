package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cardapi/internal/model"
	"cardapi/internal/service"
)

type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Stage(ctx context.Context, r io.Reader, originalName, contentType string) (*model.StagedFile, error) {
	args := m.Called(ctx, r, originalName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StagedFile), args.Error(1)
}

func (m *MockAttachmentService) Commit(ctx context.Context, in service.CommitInput, baseURL string) (*model.Attachment, error) {
	args := m.Called(ctx, in, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) UploadDirect(ctx context.Context, cardID, itemID string, r io.Reader, originalName, contentType, baseURL string) (*model.Attachment, error) {
	args := m.Called(ctx, cardID, itemID, r, originalName, contentType, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) ListCardAttachments(ctx context.Context, cardID, baseURL string) ([]model.Attachment, error) {
	args := m.Called(ctx, cardID, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) ListItemAttachments(ctx context.Context, cardID, itemID, baseURL string) ([]model.Attachment, error) {
	args := m.Called(ctx, cardID, itemID, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}
