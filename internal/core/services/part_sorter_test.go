package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

func part(carBrand, partBrand, partNumber, partName string) *domain.Part {
	return &domain.Part{
		CarBrand:   carBrand,
		PartBrand:  partBrand,
		PartNumber: partNumber,
		PartName:   partName,
	}
}

func numbers(parts []*domain.Part) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.PartNumber)
	}
	return out
}

func TestSortParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		parts  []*domain.Part
		sortBy string
		want   []string
	}{
		{
			name: "no sort token keeps store order",
			parts: []*domain.Part{
				part("Toyota", "Bosch", "Z9", "Filter"),
				part("Audi", "Denso", "A1", "Pump"),
			},
			sortBy: "",
			want:   []string{"Z9", "A1"},
		},
		{
			name: "carBrand ascending, ties broken by partBrand then partNumber",
			parts: []*domain.Part{
				part("Toyota", "Denso", "A1", "Pump"),
				part("Toyota", "Bosch", "B1", "Filter"),
			},
			sortBy: "carBrand-Asc",
			want:   []string{"B1", "A1"},
		},
		{
			name: "descending primary keeps tie-break keys ascending",
			parts: []*domain.Part{
				part("Toyota", "Denso", "A2", "Pump"),
				part("Audi", "NGK", "C3", "Plug"),
				part("Toyota", "Bosch", "B9", "Filter"),
				part("Toyota", "Bosch", "B1", "Hose"),
			},
			sortBy: "carBrand-Desc",
			want:   []string{"B1", "B9", "A2", "C3"},
		},
		{
			name: "partBrand primary ties fall back to carBrand",
			parts: []*domain.Part{
				part("Volvo", "Bosch", "V1", "Pump"),
				part("Audi", "Bosch", "A1", "Pump"),
				part("BMW", "Aisin", "M1", "Pump"),
			},
			sortBy: "partBrand-Asc",
			want:   []string{"M1", "A1", "V1"},
		},
		{
			name: "partName primary ties fall back to carBrand then partBrand",
			parts: []*domain.Part{
				part("Volvo", "Denso", "V1", "Pump"),
				part("Volvo", "Bosch", "V2", "Pump"),
				part("Audi", "NGK", "A1", "Pump"),
			},
			sortBy: "partName-Asc",
			want:   []string{"A1", "V2", "V1"},
		},
		{
			name: "partNumber descending",
			parts: []*domain.Part{
				part("Audi", "Bosch", "A1", "Pump"),
				part("BMW", "Denso", "C3", "Plug"),
				part("Volvo", "NGK", "B2", "Hose"),
			},
			sortBy: "partNumber-Desc",
			want:   []string{"C3", "B2", "A1"},
		},
		{
			name: "direction token other than Desc means ascending",
			parts: []*domain.Part{
				part("Volvo", "Bosch", "V1", "Pump"),
				part("Audi", "Bosch", "A1", "Pump"),
			},
			sortBy: "carBrand-desc",
			want:   []string{"A1", "V1"},
		},
		{
			name: "unknown field falls back to default chain and ignores direction",
			parts: []*domain.Part{
				part("Volvo", "Bosch", "V1", "Pump"),
				part("Audi", "Denso", "A1", "Pump"),
				part("Audi", "Bosch", "A2", "Pump"),
			},
			sortBy: "mileage-Desc",
			want:   []string{"A2", "A1", "V1"},
		},
		{
			name: "comparison is case-insensitive",
			parts: []*domain.Part{
				part("toyota", "Bosch", "T1", "Pump"),
				part("AUDI", "Bosch", "A1", "Pump"),
				part("Bmw", "Bosch", "B1", "Pump"),
			},
			sortBy: "carBrand-Asc",
			want:   []string{"A1", "B1", "T1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			SortParts(tt.parts, tt.sortBy)
			assert.Equal(t, tt.want, numbers(tt.parts))
		})
	}
}

// The worked example: two Toyota records sorted carBrand-Asc tie on the
// primary key and must order by partBrand ascending.
func TestSortPartsTieBreakExample(t *testing.T) {
	t.Parallel()

	a := part("Toyota", "Bosch", "B1", "Filter")
	b := part("Toyota", "Denso", "A1", "Pump")
	parts := []*domain.Part{b, a}

	SortParts(parts, "carBrand-Asc")

	assert.Equal(t, []*domain.Part{a, b}, parts)
}
