package mocks

import (
	"context"
	"io"
	"time"

	"bucketapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockObjectService struct {
	mock.Mock
}

func (m *MockObjectService) List(ctx context.Context, prefix string) ([]model.ObjectSummary, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ObjectSummary), args.Error(1)
}

func (m *MockObjectService) Browse(ctx context.Context, prefix string) (*model.BrowseResult, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BrowseResult), args.Error(1)
}

func (m *MockObjectService) Stat(ctx context.Context, key string) (*model.ObjectMetadata, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ObjectMetadata), args.Error(1)
}

func (m *MockObjectService) Download(ctx context.Context, key string) (io.ReadCloser, *model.ObjectMetadata, error) {
	args := m.Called(ctx, key)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	if args.Get(1) == nil {
		return rc, nil, args.Error(2)
	}
	return rc, args.Get(1).(*model.ObjectMetadata), args.Error(2)
}

func (m *MockObjectService) Upload(ctx context.Context, key, filename string, r io.Reader, contentType string, size int64) (string, error) {
	args := m.Called(ctx, key, filename, r, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockObjectService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectService) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockObjectService) Buckets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
