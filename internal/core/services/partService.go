package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/ports"
)

type PartService struct {
	partRepo ports.PartRepository
	media    ports.MediaStorage
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewPartService(
	partRepo ports.PartRepository,
	media ports.MediaStorage,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *PartService {
	return &PartService{
		partRepo: partRepo,
		media:    media,
		logger:   logger,
		validate: validate,
	}
}

func (s *PartService) CreatePart(ctx context.Context, in domain.NewPart) (*domain.Part, error) {
	in.CarBrand = strings.TrimSpace(in.CarBrand)
	in.PartBrand = strings.TrimSpace(in.PartBrand)
	in.PartNumber = strings.TrimSpace(in.PartNumber)
	in.PartName = strings.TrimSpace(in.PartName)

	if err := s.validate.Struct(in); err != nil {
		s.logger.Error("Part validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, errors.Join(domain.ErrValidation, err)
	}
	if !in.Category.Valid() {
		s.logger.Error("Unknown part category", map[string]interface{}{
			"category": string(in.Category),
		})
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.Category)
	}

	// Image hosting is best effort: a failed upload degrades to a part
	// without an image instead of failing the create.
	image := in.ImageURL
	if in.ImageFile != "" {
		asset, err := s.media.Upload(ctx, in.ImageFile)
		if err != nil {
			s.logger.Warn("Image upload failed, continuing without image", map[string]interface{}{
				"error":       err.Error(),
				"part_number": in.PartNumber,
			})
			image = nil
		} else {
			image = lo.ToPtr(asset.URL)
		}
	}

	part := &domain.Part{
		ID:             uuid.NewString(),
		Category:       in.Category,
		CarBrand:       in.CarBrand,
		PartBrand:      in.PartBrand,
		PartNumber:     in.PartNumber,
		PartName:       in.PartName,
		Image:          image,
		Description:    in.Description,
		Specifications: in.Specifications,
		Price:          in.Price,
	}

	created, err := s.partRepo.CreatePart(ctx, part)
	if err != nil {
		s.logger.Error("Failed to create part", map[string]interface{}{
			"error":       err.Error(),
			"part_number": in.PartNumber,
		})
		return nil, err
	}

	s.logger.Info("Part created successfully", map[string]interface{}{
		"part_id":     created.ID,
		"part_number": created.PartNumber,
	})

	return created, nil
}

func (s *PartService) GetPartByID(ctx context.Context, id string) (*domain.Part, error) {
	part, err := s.partRepo.GetPartByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrPartNotFound) {
			s.logger.Error("Failed to get part", map[string]interface{}{
				"error":   err.Error(),
				"part_id": id,
			})
		}
		return nil, err
	}
	return part, nil
}

func (s *PartService) ListParts(ctx context.Context, filter domain.PartFilter, sortBy string) ([]*domain.Part, error) {
	parts, err := s.partRepo.ListParts(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list parts", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	SortParts(parts, sortBy)

	return parts, nil
}

func (s *PartService) UpdatePart(ctx context.Context, id string, in domain.PartUpdate) (*domain.Part, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Error("Part update validation failed", map[string]interface{}{
			"error":   err.Error(),
			"part_id": id,
		})
		return nil, errors.Join(domain.ErrValidation, err)
	}
	if in.Category != nil && !in.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, *in.Category)
	}

	patch := domain.PartPatch{
		Category:       in.Category,
		CarBrand:       in.CarBrand,
		PartBrand:      in.PartBrand,
		PartNumber:     in.PartNumber,
		PartName:       in.PartName,
		Description:    in.Description,
		Specifications: in.Specifications,
		Price:          in.Price,
	}

	// Three-way image handling: a new upload wins, an explicit URL is next,
	// nothing supplied keeps the stored image. A failed upload overwrites
	// with the explicit URL or clears, mirroring the create-side degrade.
	switch {
	case in.ImageFile != "":
		asset, err := s.media.Upload(ctx, in.ImageFile)
		if err != nil {
			s.logger.Warn("Image upload failed, continuing without image", map[string]interface{}{
				"error":   err.Error(),
				"part_id": id,
			})
			patch.Image = in.ImageURL
		} else {
			patch.Image = lo.ToPtr(asset.URL)
		}
		patch.SetImage = true
	case in.ImageURL != nil:
		patch.Image = in.ImageURL
		patch.SetImage = true
	}

	updated, err := s.partRepo.UpdatePart(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, domain.ErrPartNotFound) {
			s.logger.Error("Failed to update part", map[string]interface{}{
				"error":   err.Error(),
				"part_id": id,
			})
		}
		return nil, err
	}

	s.logger.Info("Part updated successfully", map[string]interface{}{
		"part_id": id,
	})

	return updated, nil
}

func (s *PartService) DeletePart(ctx context.Context, id string) error {
	part, err := s.partRepo.GetPartByID(ctx, id)
	if err != nil {
		return err
	}

	// Asset removal is best effort and must never block the delete.
	if part.Image != nil {
		if publicID, ok := s.media.PublicIDFromURL(*part.Image); ok {
			if err := s.media.Destroy(ctx, publicID); err != nil {
				s.logger.Warn("Failed to delete hosted image", map[string]interface{}{
					"error":     err.Error(),
					"part_id":   id,
					"public_id": publicID,
				})
			}
		}
	}

	if err := s.partRepo.DeletePart(ctx, id); err != nil {
		s.logger.Error("Failed to delete part", map[string]interface{}{
			"error":   err.Error(),
			"part_id": id,
		})
		return err
	}

	s.logger.Info("Part deleted successfully", map[string]interface{}{
		"part_id": id,
	})

	return nil
}

func (s *PartService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	stats, err := s.partRepo.CollectStats(ctx)
	if err != nil {
		s.logger.Error("Failed to collect catalog stats", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return stats, nil
}
