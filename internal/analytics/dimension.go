// Package analytics implements the aggregation pipeline behind the dashboard:
// filtering the immutable record set and deriving per-category outcome counts
// and percentage rates. Every function is a pure transformation of its
// inputs, so results are safe to recompute on each request and to share
// across concurrent requests.
package analytics

import (
	"fmt"
	"sort"

	"churnboard.openbanklabs.org/internal/churn"
)

// Dimension names one of the four category attributes records are grouped by.
// The wire values match the dataset's normalized column names.
type Dimension string

const (
	DimensionAgeGroup       Dimension = "age_group"
	DimensionEducationLevel Dimension = "education_level"
	DimensionGender         Dimension = "gender"
	DimensionIncomeCategory Dimension = "income_category"
)

// Dimensions returns every grouping dimension.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionAgeGroup,
		DimensionEducationLevel,
		DimensionGender,
		DimensionIncomeCategory,
	}
}

// ParseDimension validates a dimension name from an external source.
func ParseDimension(name string) (Dimension, error) {
	switch Dimension(name) {
	case DimensionAgeGroup, DimensionEducationLevel, DimensionGender, DimensionIncomeCategory:
		return Dimension(name), nil
	default:
		return "", fmt.Errorf("unknown dimension: %q", name)
	}
}

// value extracts a record's value for the dimension. Records with an
// undefined age group return the empty string for DimensionAgeGroup.
func (d Dimension) value(rec churn.Record) string {
	switch d {
	case DimensionAgeGroup:
		return string(rec.AgeGroup)
	case DimensionEducationLevel:
		return rec.EducationLevel
	case DimensionGender:
		return rec.Gender
	case DimensionIncomeCategory:
		return rec.IncomeCategory
	default:
		return ""
	}
}

// OrderValues sorts category values into render order: age groups in bucket
// order, every other dimension alphabetically.
func OrderValues(dim Dimension, values []string) []string {
	if dim == DimensionAgeGroup {
		present := make(map[string]bool, len(values))
		for _, v := range values {
			present[v] = true
		}
		var ordered []string
		for _, label := range churn.AgeGroupLabels() {
			if present[label] {
				ordered = append(ordered, label)
			}
		}
		return ordered
	}

	ordered := make([]string, len(values))
	copy(ordered, values)
	sort.Strings(ordered)
	return ordered
}
