package ports

import (
	"context"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

type PartRepository interface {
	CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error)
	GetPartByID(ctx context.Context, id string) (*domain.Part, error)
	ListParts(ctx context.Context, filter domain.PartFilter) ([]*domain.Part, error)
	UpdatePart(ctx context.Context, id string, patch domain.PartPatch) (*domain.Part, error)
	DeletePart(ctx context.Context, id string) error
	CollectStats(ctx context.Context) (*domain.CatalogStats, error)
}

type PartService interface {
	CreatePart(ctx context.Context, in domain.NewPart) (*domain.Part, error)
	GetPartByID(ctx context.Context, id string) (*domain.Part, error)
	ListParts(ctx context.Context, filter domain.PartFilter, sortBy string) ([]*domain.Part, error)
	UpdatePart(ctx context.Context, id string, in domain.PartUpdate) (*domain.Part, error)
	DeletePart(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.CatalogStats, error)
}

type UploadService interface {
	UploadImage(ctx context.Context, file domain.UploadFile) (*domain.UploadedAsset, error)
	UploadImages(ctx context.Context, files []domain.UploadFile) []*domain.UploadedAsset
}
