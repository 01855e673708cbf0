package ports

import (
	"context"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

// MediaStorage is the external image host. Upload failures are expected to be
// handled by callers as a degraded-but-successful path, never as a fatal one.
type MediaStorage interface {
	Upload(ctx context.Context, filePath string) (*domain.UploadedAsset, error)
	Destroy(ctx context.Context, publicID string) error
	// PublicIDFromURL derives the deletion key from a stored asset URL.
	// It reports false for URLs the host did not produce.
	PublicIDFromURL(rawURL string) (string, bool)
}
