package churndb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnboard.openbanklabs.org/internal/appconf"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testCustomers() []Customer {
	return []Customer{
		{UserID: 1, AttritionFlag: "Existing", Age: 25, Gender: "F", EducationLevel: "Graduate", MaritalStatus: "Single", IncomeCategory: "Less than $40K", CardCategory: "Blue", AgeGroup: "20-39"},
		{UserID: 2, AttritionFlag: "Attrited", Age: 45, Gender: "M", EducationLevel: "Doctorate", MaritalStatus: "Married", IncomeCategory: "$80K - $120K", CardCategory: "Blue", AgeGroup: "40-49"},
		{UserID: 3, AttritionFlag: "Existing", Age: 62, Gender: "F", EducationLevel: "Graduate", MaritalStatus: "Married", IncomeCategory: "Less than $40K", CardCategory: "Silver", AgeGroup: "60-79"},
		{UserID: 4, AttritionFlag: "Existing", Age: 15, Gender: "M", EducationLevel: "Uneducated", MaritalStatus: "Single", IncomeCategory: "Less than $40K", CardCategory: "Blue", AgeGroup: ""},
	}
}

func TestNewClientRejectsFileDBInTestEnv(t *testing.T) {
	_, err := NewClient(NewConfig("churn.db", appconf.Test, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in-memory")
}

func TestInsertAndCountCustomers(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.InsertCustomerBatch(testCustomers()))

	count, err := client.CountCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestInsertCustomerBatchIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.InsertCustomerBatch(testCustomers()))
	require.NoError(t, client.InsertCustomerBatch(testCustomers()))

	count, err := client.CountCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestCountByAttrition(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.InsertCustomerBatch(testCustomers()))

	counts, err := client.CountByAttrition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts["Existing"])
	assert.Equal(t, int64(1), counts["Attrited"])
}

func TestDistinctValues(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.InsertCustomerBatch(testCustomers()))

	t.Run("education levels are sorted and deduplicated", func(t *testing.T) {
		values, err := client.DistinctValues(context.Background(), "education_level")
		require.NoError(t, err)
		assert.Equal(t, []string{"Doctorate", "Graduate", "Uneducated"}, values)
	})

	t.Run("undefined age group is excluded", func(t *testing.T) {
		values, err := client.DistinctValues(context.Background(), "age_group")
		require.NoError(t, err)
		assert.NotContains(t, values, "")
		assert.Len(t, values, 3)
	})

	t.Run("unknown column is rejected", func(t *testing.T) {
		_, err := client.DistinctValues(context.Background(), "credit_limit; DROP TABLE customers")
		require.Error(t, err)
	})
}
