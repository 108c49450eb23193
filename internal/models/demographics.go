package models

import (
	"churnboard.openbanklabs.org/internal/analytics"
	"churnboard.openbanklabs.org/internal/churn"
)

// outcomeOrder fixes the render order of outcomes within a category value.
var outcomeOrder = []churn.Outcome{churn.OutcomeExisting, churn.OutcomeAttrited}

// CountRowModel is one (category value, outcome) cell of a count table.
type CountRowModel struct {
	Value   string `json:"value"`
	Outcome string `json:"outcome"`
	Count   int    `json:"count"`
}

// CountTableModel is the response shape for a demographics count table. Order
// carries the category rendering hint: bucket order for age groups,
// alphabetical for everything else.
type CountTableModel struct {
	Dimension     string          `json:"dimension"`
	Order         []string        `json:"order"`
	Rows          []CountRowModel `json:"rows"`
	FilteredTotal int             `json:"filteredTotal"`
}

// NewCountTableModel flattens a count table into ordered rows.
func NewCountTableModel(dim analytics.Dimension, table analytics.CountTable, filteredTotal int) CountTableModel {
	order := analytics.OrderValues(dim, table.Values())

	rows := make([]CountRowModel, 0, len(table))
	for _, value := range order {
		for _, outcome := range outcomeOrder {
			if count, ok := table[analytics.TableKey{Value: value, Outcome: outcome}]; ok {
				rows = append(rows, CountRowModel{
					Value:   value,
					Outcome: string(outcome),
					Count:   count,
				})
			}
		}
	}

	return CountTableModel{
		Dimension:     string(dim),
		Order:         order,
		Rows:          rows,
		FilteredTotal: filteredTotal,
	}
}

// RateRowModel is one (category value, outcome) cell of a rate table.
type RateRowModel struct {
	Value      string  `json:"value"`
	Outcome    string  `json:"outcome"`
	Percentage float64 `json:"percentage"`
	Label      string  `json:"label"`
}

// RateTableModel is the response shape for a churn rate table.
type RateTableModel struct {
	Dimension string         `json:"dimension"`
	Order     []string       `json:"order"`
	Rows      []RateRowModel `json:"rows"`
}

// NewRateTableModel flattens a rate table into ordered, labeled rows.
func NewRateTableModel(dim analytics.Dimension, table analytics.RateTable) RateTableModel {
	order := analytics.OrderValues(dim, table.Values())

	rows := make([]RateRowModel, 0, len(table))
	for _, value := range order {
		for _, outcome := range outcomeOrder {
			if pct, ok := table[analytics.TableKey{Value: value, Outcome: outcome}]; ok {
				rows = append(rows, RateRowModel{
					Value:      value,
					Outcome:    string(outcome),
					Percentage: pct,
					Label:      analytics.FormatRateLabel(pct),
				})
			}
		}
	}

	return RateTableModel{
		Dimension: string(dim),
		Order:     order,
		Rows:      rows,
	}
}

// FilterOptionsModel lists the selectable values per dimension.
type FilterOptionsModel struct {
	AgeGroups        []string `json:"ageGroups"`
	EducationLevels  []string `json:"educationLevels"`
	Genders          []string `json:"genders"`
	IncomeCategories []string `json:"incomeCategories"`
}
