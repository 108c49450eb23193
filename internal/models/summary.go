package models

import (
	"fmt"

	"churnboard.openbanklabs.org/internal/churn"
)

// SummaryModel carries the overview page's headline metrics.
type SummaryModel struct {
	TotalCustomers    int     `json:"totalCustomers"`
	ExistingCustomers int     `json:"existingCustomers"`
	AttritedCustomers int     `json:"attritedCustomers"`
	ChurnRatePct      float64 `json:"churnRatePct"`
	ChurnRateLabel    string  `json:"churnRateLabel"`
}

// NewSummaryModel converts a dataset summary into its response shape. The
// label keeps the overview page's two-decimal formatting.
func NewSummaryModel(summary churn.Summary) SummaryModel {
	return SummaryModel{
		TotalCustomers:    summary.TotalCustomers,
		ExistingCustomers: summary.ExistingCustomers,
		AttritedCustomers: summary.AttritedCustomers,
		ChurnRatePct:      summary.ChurnRatePct,
		ChurnRateLabel:    fmt.Sprintf("%.2f%%", summary.ChurnRatePct),
	}
}
