package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryHandler(t *testing.T) {
	resp, response := serveAndRetrieveEndpoint(t, "/api/churn/summary.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)

	entry := entryFromResponse(t, response)
	assert.Equal(t, float64(12), entry["totalCustomers"])
	assert.Equal(t, float64(8), entry["existingCustomers"])
	assert.Equal(t, float64(4), entry["attritedCustomers"])
	assert.Equal(t, "33.33%", entry["churnRateLabel"])
}

func TestSummaryHandlerRequiresAPIKey(t *testing.T) {
	resp, response := serveAndRetrieveEndpoint(t, "/api/churn/summary.json")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", response.Text)
}

func TestSummaryHandlerRejectsWrongKey(t *testing.T) {
	resp, _ := serveAndRetrieveEndpoint(t, "/api/churn/summary.json?key=WRONG")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestColumnsHandler(t *testing.T) {
	resp, response := serveAndRetrieveEndpoint(t, "/api/churn/columns.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromResponse(t, response)
	assert.Len(t, list, 21)

	first, ok := list[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "user_id", first["name"])
}
