package services

import (
	"context"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/ports"
)

type UploadService struct {
	media  ports.MediaStorage
	logger ports.LoggerPort
}

func NewUploadService(media ports.MediaStorage, logger ports.LoggerPort) *UploadService {
	return &UploadService{media: media, logger: logger}
}

func (s *UploadService) UploadImage(ctx context.Context, file domain.UploadFile) (*domain.UploadedAsset, error) {
	asset, err := s.media.Upload(ctx, file.Path)
	if err != nil {
		s.logger.Error("Image upload failed", map[string]interface{}{
			"error":    err.Error(),
			"filename": file.OriginalName,
		})
		return nil, err
	}
	asset.OriginalName = file.OriginalName

	s.logger.Info("Image uploaded successfully", map[string]interface{}{
		"public_id": asset.PublicID,
		"filename":  file.OriginalName,
	})

	return asset, nil
}

// UploadImages uploads each file independently; a failed file is logged and
// skipped so the rest of the batch still goes through.
func (s *UploadService) UploadImages(ctx context.Context, files []domain.UploadFile) []*domain.UploadedAsset {
	uploaded := make([]*domain.UploadedAsset, 0, len(files))
	for _, file := range files {
		asset, err := s.media.Upload(ctx, file.Path)
		if err != nil {
			s.logger.Warn("Skipping failed image upload", map[string]interface{}{
				"error":    err.Error(),
				"filename": file.OriginalName,
			})
			continue
		}
		asset.OriginalName = file.OriginalName
		uploaded = append(uploaded, asset)
	}
	return uploaded
}
