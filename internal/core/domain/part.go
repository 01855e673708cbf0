package domain

import (
	"time"
)

// Category is the closed set of catalog tags a part can belong to.
type Category string

const (
	CategoryAirConditioning    Category = "air-conditioning"
	CategoryBodyParts          Category = "body-parts"
	CategoryLampParts          Category = "lamp-parts"
	CategorySuspensionSteering Category = "suspension-steering"
	CategoryEngine             Category = "engine"
	CategoryElectrical         Category = "electrical"
	CategoryWheelsTires        Category = "wheels-tires"
	CategoryOilFluids          Category = "oil-fluids"
	CategoryWindscreen         Category = "windscreen-cleaning"
	CategoryClutch             Category = "clutch"
	CategoryTransmission       Category = "transmission"
	CategoryFilters            Category = "filters"
	CategoryInteriors          Category = "interiors"
	CategoryGasketSeals        Category = "gasket-seals"
	CategoryFuel               Category = "fuel"
	CategoryExhaust            Category = "exhaust"
	CategoryCooling            Category = "cooling"
	CategoryServiceKit         Category = "service-kit"
	CategoryAccessories        Category = "accessories"
	CategoryBrake              Category = "brake"
	CategoryBeltChain          Category = "belt-chain"
	CategoryFasteners          Category = "fasteners"
	CategoryLighting           Category = "lighting"
	CategoryUniversal          Category = "universal"
)

var categories = map[Category]struct{}{
	CategoryAirConditioning:    {},
	CategoryBodyParts:          {},
	CategoryLampParts:          {},
	CategorySuspensionSteering: {},
	CategoryEngine:             {},
	CategoryElectrical:         {},
	CategoryWheelsTires:        {},
	CategoryOilFluids:          {},
	CategoryWindscreen:         {},
	CategoryClutch:             {},
	CategoryTransmission:       {},
	CategoryFilters:            {},
	CategoryInteriors:          {},
	CategoryGasketSeals:        {},
	CategoryFuel:               {},
	CategoryExhaust:            {},
	CategoryCooling:            {},
	CategoryServiceKit:         {},
	CategoryAccessories:        {},
	CategoryBrake:              {},
	CategoryBeltChain:          {},
	CategoryFasteners:          {},
	CategoryLighting:           {},
	CategoryUniversal:          {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Part is a single catalog record describing a purchasable auto component.
type Part struct {
	ID             string    `json:"id"`
	Category       Category  `json:"category"`
	CarBrand       string    `json:"carBrand"`
	PartBrand      string    `json:"partBrand"`
	PartNumber     string    `json:"partNumber"`
	PartName       string    `json:"partName"`
	Image          *string   `json:"image"`
	Description    *string   `json:"description"`
	Specifications *string   `json:"specifications"`
	Price          *float64  `json:"price"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewPart carries the fields of a create request. ImageFile, when non-empty,
// points at a temporary file the caller owns and cleans up.
type NewPart struct {
	Category       Category `validate:"required"`
	CarBrand       string   `validate:"required"`
	PartBrand      string   `validate:"required"`
	PartNumber     string   `validate:"required"`
	PartName       string   `validate:"required"`
	Description    *string
	Specifications *string
	Price          *float64 `validate:"omitempty,gte=0"`
	ImageURL       *string
	ImageFile      string
}

// PartUpdate carries the fields of an update request. The five identity
// fields change only when supplied; Description, Specifications and Price
// always overwrite the stored value, clearing it when absent.
type PartUpdate struct {
	Category       *Category
	CarBrand       *string
	PartBrand      *string
	PartNumber     *string
	PartName       *string
	Description    *string
	Specifications *string
	Price          *float64 `validate:"omitempty,gte=0"`
	ImageURL       *string
	ImageFile      string
}

// PartPatch is the resolved store-level change set for an update.
// Image is written only when SetImage is true.
type PartPatch struct {
	Category       *Category
	CarBrand       *string
	PartBrand      *string
	PartNumber     *string
	PartName       *string
	Description    *string
	Specifications *string
	Price          *float64
	Image          *string
	SetImage       bool
}

// PartFilter holds the optional list criteria; zero values mean "no filter".
type PartFilter struct {
	Category  string
	CarBrand  string
	PartBrand string
	Search    string
}

type CatalogStats struct {
	TotalParts      int64 `json:"totalParts"`
	PartsWithImages int64 `json:"partsWithImages"`
	TotalCategories int64 `json:"totalCategories"`
	TotalBrands     int64 `json:"totalBrands"`
}
