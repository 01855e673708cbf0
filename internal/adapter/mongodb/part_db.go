package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

type PartRepository struct {
	coll *mongo.Collection
}

func NewPartRepository(coll *mongo.Collection) *PartRepository {
	return &PartRepository{coll: coll}
}

func (r *PartRepository) CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	const op = "mongodb.CreatePart"

	now := time.Now().UTC()
	part.CreatedAt = now
	part.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, entityFromDomain(part))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicatePartNumber
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (r *PartRepository) GetPartByID(ctx context.Context, id string) (*domain.Part, error) {
	const op = "mongodb.GetPartByID"

	var ent partEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entityToDomain(&ent), nil
}

func (r *PartRepository) ListParts(ctx context.Context, filter domain.PartFilter) ([]*domain.Part, error) {
	const op = "mongodb.ListParts"

	cur, err := r.coll.Find(ctx, BuildPartFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.Part, 0)
	for cur.Next(ctx) {
		var ent partEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, entityToDomain(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

// UpdatePart applies the patch and returns the post-update document.
// Description, specifications and price are written unconditionally,
// clearing them when the patch carries nil; the identity fields are
// written only when present.
func (r *PartRepository) UpdatePart(ctx context.Context, id string, patch domain.PartPatch) (*domain.Part, error) {
	const op = "mongodb.UpdatePart"

	set := bson.M{
		"description":    patch.Description,
		"specifications": patch.Specifications,
		"price":          patch.Price,
		"updatedAt":      time.Now().UTC(),
	}
	if patch.Category != nil {
		set["category"] = string(*patch.Category)
	}
	if patch.CarBrand != nil {
		set["carBrand"] = *patch.CarBrand
	}
	if patch.PartBrand != nil {
		set["partBrand"] = *patch.PartBrand
	}
	if patch.PartNumber != nil {
		set["partNumber"] = *patch.PartNumber
	}
	if patch.PartName != nil {
		set["partName"] = *patch.PartName
	}
	if patch.SetImage {
		set["image"] = patch.Image
	}

	var ent partEntity
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicatePartNumber
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entityToDomain(&ent), nil
}

func (r *PartRepository) DeletePart(ctx context.Context, id string) error {
	const op = "mongodb.DeletePart"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPartNotFound
	}

	return nil
}

func (r *PartRepository) CollectStats(ctx context.Context) (*domain.CatalogStats, error) {
	const op = "mongodb.CollectStats"

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s total: %w", op, err)
	}

	withImages, err := r.coll.CountDocuments(ctx, bson.M{"image": bson.M{"$ne": nil}})
	if err != nil {
		return nil, fmt.Errorf("%s with images: %w", op, err)
	}

	var cats []string
	if err := r.coll.Distinct(ctx, "category", bson.M{}).Decode(&cats); err != nil {
		return nil, fmt.Errorf("%s categories: %w", op, err)
	}

	var brands []string
	if err := r.coll.Distinct(ctx, "carBrand", bson.M{}).Decode(&brands); err != nil {
		return nil, fmt.Errorf("%s brands: %w", op, err)
	}

	return &domain.CatalogStats{
		TotalParts:      total,
		PartsWithImages: withImages,
		TotalCategories: int64(len(cats)),
		TotalBrands:     int64(len(brands)),
	}, nil
}
