package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnboard.openbanklabs.org/internal/analytics"
	"churnboard.openbanklabs.org/internal/churn"
)

func TestNewCountTableModelOrdersRows(t *testing.T) {
	table := analytics.CountTable{
		{Value: "60-79", Outcome: churn.OutcomeExisting}: 2,
		{Value: "20-39", Outcome: churn.OutcomeAttrited}: 1,
		{Value: "20-39", Outcome: churn.OutcomeExisting}: 3,
	}

	model := NewCountTableModel(analytics.DimensionAgeGroup, table, 6)

	assert.Equal(t, "age_group", model.Dimension)
	assert.Equal(t, []string{"20-39", "60-79"}, model.Order)
	assert.Equal(t, 6, model.FilteredTotal)

	require.Len(t, model.Rows, 3)
	assert.Equal(t, CountRowModel{Value: "20-39", Outcome: "Existing", Count: 3}, model.Rows[0])
	assert.Equal(t, CountRowModel{Value: "20-39", Outcome: "Attrited", Count: 1}, model.Rows[1])
	assert.Equal(t, CountRowModel{Value: "60-79", Outcome: "Existing", Count: 2}, model.Rows[2])
}

func TestNewRateTableModelAttachesLabels(t *testing.T) {
	table := analytics.RateTable{
		{Value: "F", Outcome: churn.OutcomeExisting}: 82.6,
		{Value: "F", Outcome: churn.OutcomeAttrited}: 17.4,
	}

	model := NewRateTableModel(analytics.DimensionGender, table)

	require.Len(t, model.Rows, 2)
	assert.Equal(t, "82.6%", model.Rows[0].Label)
	assert.Equal(t, "17.4%", model.Rows[1].Label)
	assert.Equal(t, []string{"F"}, model.Order)
}

func TestNewSummaryModelLabel(t *testing.T) {
	model := NewSummaryModel(churn.Summary{
		TotalCustomers:    12,
		ExistingCustomers: 8,
		AttritedCustomers: 4,
		ChurnRatePct:      33.333333,
	})

	assert.Equal(t, "33.33%", model.ChurnRateLabel)
	assert.Equal(t, 12, model.TotalCustomers)
}
