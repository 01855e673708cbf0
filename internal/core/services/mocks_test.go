package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

type mockPartRepository struct {
	mock.Mock
}

func (m *mockPartRepository) CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	args := m.Called(ctx, part)
	if v := args.Get(0); v != nil {
		return v.(*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartRepository) GetPartByID(ctx context.Context, id string) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartRepository) ListParts(ctx context.Context, filter domain.PartFilter) ([]*domain.Part, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartRepository) UpdatePart(ctx context.Context, id string, patch domain.PartPatch) (*domain.Part, error) {
	args := m.Called(ctx, id, patch)
	if v := args.Get(0); v != nil {
		return v.(*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartRepository) DeletePart(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPartRepository) CollectStats(ctx context.Context) (*domain.CatalogStats, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.CatalogStats), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMediaStorage struct {
	mock.Mock
}

func (m *mockMediaStorage) Upload(ctx context.Context, filePath string) (*domain.UploadedAsset, error) {
	args := m.Called(ctx, filePath)
	if v := args.Get(0); v != nil {
		return v.(*domain.UploadedAsset), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMediaStorage) Destroy(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

func (m *mockMediaStorage) PublicIDFromURL(rawURL string) (string, bool) {
	args := m.Called(rawURL)
	return args.String(0), args.Bool(1)
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}
