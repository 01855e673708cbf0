package mongodb

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

type partEntity struct {
	ID             string    `bson:"_id"`
	Category       string    `bson:"category"`
	CarBrand       string    `bson:"carBrand"`
	PartBrand      string    `bson:"partBrand"`
	PartNumber     string    `bson:"partNumber"`
	PartName       string    `bson:"partName"`
	Image          *string   `bson:"image"`
	Description    *string   `bson:"description"`
	Specifications *string   `bson:"specifications"`
	Price          *float64  `bson:"price"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

func entityToDomain(e *partEntity) *domain.Part {
	if e == nil {
		return nil
	}
	return &domain.Part{
		ID:             e.ID,
		Category:       domain.Category(e.Category),
		CarBrand:       e.CarBrand,
		PartBrand:      e.PartBrand,
		PartNumber:     e.PartNumber,
		PartName:       e.PartName,
		Image:          e.Image,
		Description:    e.Description,
		Specifications: e.Specifications,
		Price:          e.Price,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func entityFromDomain(p *domain.Part) *partEntity {
	if p == nil {
		return nil
	}
	return &partEntity{
		ID:             p.ID,
		Category:       string(p.Category),
		CarBrand:       p.CarBrand,
		PartBrand:      p.PartBrand,
		PartNumber:     p.PartNumber,
		PartName:       p.PartName,
		Image:          p.Image,
		Description:    p.Description,
		Specifications: p.Specifications,
		Price:          p.Price,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// BuildPartFilter translates the list criteria into query predicates.
// Criteria compose with logical AND; the search criterion is itself an OR
// across the four searchable fields. Substring matches are case-insensitive.
func BuildPartFilter(f domain.PartFilter) bson.M {
	q := bson.M{}

	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.CarBrand != "" {
		q["carBrand"] = bson.M{"$regex": regexp.QuoteMeta(f.CarBrand), "$options": "i"}
	}
	if f.PartBrand != "" {
		q["partBrand"] = f.PartBrand
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		q["$or"] = bson.A{
			bson.M{"partName": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"partNumber": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"carBrand": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"partBrand": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	return q
}
