package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

// SortParts orders parts in place by the sortBy token of the form
// "<field>-<direction>". The direction applies to the primary key only;
// the tie-break keys are always ascending. An empty token leaves the
// slice in store order, an unknown field falls back to the default chain
// (carBrand, partBrand, partNumber, all ascending).
func SortParts(parts []*domain.Part, sortBy string) {
	if sortBy == "" {
		return
	}

	field, order, _ := strings.Cut(sortBy, "-")
	desc := order == "Desc"

	col := collate.New(language.English, collate.IgnoreCase)

	sort.SliceStable(parts, func(i, j int) bool {
		a, b := parts[i], parts[j]

		var primary, secondary, tertiary int
		switch field {
		case "carBrand":
			primary = directed(col.CompareString(a.CarBrand, b.CarBrand), desc)
			secondary = col.CompareString(a.PartBrand, b.PartBrand)
			tertiary = col.CompareString(a.PartNumber, b.PartNumber)
		case "partBrand":
			primary = directed(col.CompareString(a.PartBrand, b.PartBrand), desc)
			secondary = col.CompareString(a.CarBrand, b.CarBrand)
			tertiary = col.CompareString(a.PartNumber, b.PartNumber)
		case "partNumber":
			primary = directed(col.CompareString(a.PartNumber, b.PartNumber), desc)
			secondary = col.CompareString(a.CarBrand, b.CarBrand)
			tertiary = col.CompareString(a.PartBrand, b.PartBrand)
		case "partName":
			primary = directed(col.CompareString(a.PartName, b.PartName), desc)
			secondary = col.CompareString(a.CarBrand, b.CarBrand)
			tertiary = col.CompareString(a.PartBrand, b.PartBrand)
		default:
			// Direction is ignored for unrecognized fields, matching the
			// default listing order.
			primary = col.CompareString(a.CarBrand, b.CarBrand)
			secondary = col.CompareString(a.PartBrand, b.PartBrand)
			tertiary = col.CompareString(a.PartNumber, b.PartNumber)
		}

		if primary != 0 {
			return primary < 0
		}
		if secondary != 0 {
			return secondary < 0
		}
		return tertiary < 0
	})
}

func directed(cmp int, desc bool) int {
	if desc {
		return -cmp
	}
	return cmp
}
