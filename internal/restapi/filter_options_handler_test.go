package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterOptions(t *testing.T) {
	resp, response := serveAndRetrieveEndpoint(t, "/api/churn/filter-options.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, response)

	assert.Equal(t, []any{"20-39", "40-49", "50-59", "60-79"}, entry["ageGroups"])
	assert.Equal(t,
		[]any{"Doctorate", "Graduate", "High School", "Post-Graduate", "Uneducated"},
		entry["educationLevels"])
	assert.Equal(t, []any{"F", "M"}, entry["genders"])
	assert.Equal(t,
		[]any{"$120K +", "$40K - $60K", "$60K - $80K", "$80K - $120K", "Less than $40K"},
		entry["incomeCategories"])
}
