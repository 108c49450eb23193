package churn

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnboard.openbanklabs.org/internal/appconf"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := InitManager(Config{
		DatasetPath: filepath.Join("..", "..", "testdata", "bank_churn.csv"),
		DBPath:      ":memory:",
		Env:         appconf.Test,
	})
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	return manager
}

func TestInitManagerLoadsFixture(t *testing.T) {
	manager := testManager(t)

	assert.Len(t, manager.Records(), 12)
	assert.Equal(t, 1, manager.SkippedRows())
}

func TestManagerSummary(t *testing.T) {
	manager := testManager(t)
	summary := manager.Summary()

	assert.Equal(t, 12, summary.TotalCustomers)
	assert.Equal(t, 8, summary.ExistingCustomers)
	assert.Equal(t, 4, summary.AttritedCustomers)
	assert.InDelta(t, 33.33, summary.ChurnRatePct, 0.01)
}

func TestManagerDerivesAgeGroups(t *testing.T) {
	manager := testManager(t)

	undefined := 0
	for _, rec := range manager.Records() {
		assert.Equal(t, AssignAgeGroup(rec.Age), rec.AgeGroup)
		if rec.AgeGroup == AgeGroupUndefined {
			undefined++
		}
	}
	// One fixture customer is 15 years old.
	assert.Equal(t, 1, undefined)
}

func TestManagerProjectionMatchesRecords(t *testing.T) {
	manager := testManager(t)
	ctx := context.Background()

	count, err := manager.ChurnDB.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(manager.Records())), count)

	counts, err := manager.ChurnDB.CountByAttrition(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(manager.Summary().ExistingCustomers), counts["Existing"])
	assert.Equal(t, int64(manager.Summary().AttritedCustomers), counts["Attrited"])
}

func TestManagerDimensionValues(t *testing.T) {
	manager := testManager(t)
	ctx := context.Background()

	levels, err := manager.EducationLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Doctorate", "Graduate", "High School", "Post-Graduate", "Uneducated"}, levels)

	genders, err := manager.Genders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"F", "M"}, genders)

	incomes, err := manager.IncomeCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, incomes, 5)
}

func TestInitManagerMissingFile(t *testing.T) {
	_, err := InitManager(Config{
		DatasetPath: filepath.Join("..", "..", "testdata", "nope.csv"),
		DBPath:      ":memory:",
		Env:         appconf.Test,
	})
	require.Error(t, err)
}

func TestColumnDescriptionsCoverSchema(t *testing.T) {
	descriptions := ColumnDescriptions()
	assert.Len(t, descriptions, 21)
	assert.Equal(t, "user_id", descriptions[0].Name)
	assert.Equal(t, "Target", descriptions[1].Kind)
}
