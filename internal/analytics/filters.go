package analytics

import "churnboard.openbanklabs.org/internal/churn"

// Selection is the set of allowed values for one dimension. An empty
// selection admits no records.
type Selection map[string]bool

// NewSelection builds a Selection from a list of allowed values.
func NewSelection(values ...string) Selection {
	sel := make(Selection, len(values))
	for _, v := range values {
		sel[v] = true
	}
	return sel
}

// FilterSet holds one independent selection per category dimension. A record
// passes only when every dimension admits its value.
type FilterSet struct {
	AgeGroups        Selection
	EducationLevels  Selection
	Genders          Selection
	IncomeCategories Selection
}

// Matches reports whether a record passes every dimension's selection.
// Records with an undefined age group carry the empty string for that
// dimension, which can never appear in a selection of concrete buckets.
func (f FilterSet) Matches(rec churn.Record) bool {
	return f.AgeGroups[string(rec.AgeGroup)] &&
		f.EducationLevels[rec.EducationLevel] &&
		f.Genders[rec.Gender] &&
		f.IncomeCategories[rec.IncomeCategory]
}

// ApplyFilters returns the order-preserving subsequence of records admitted
// by the filter set.
func ApplyFilters(records []churn.Record, filters FilterSet) []churn.Record {
	var filtered []churn.Record
	for _, rec := range records {
		if filters.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
