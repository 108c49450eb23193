package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"churnboard.openbanklabs.org/internal/app"
	"churnboard.openbanklabs.org/internal/appconf"
	"churnboard.openbanklabs.org/internal/churn"
	"churnboard.openbanklabs.org/internal/logging"
	"churnboard.openbanklabs.org/internal/models"
)

// createTestApi creates a RestAPI instance backed by the fixture dataset.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	churnConfig := churn.Config{
		DatasetPath: filepath.Join("..", "..", "testdata", "bank_churn.csv"),
		DBPath:      ":memory:",
		Env:         appconf.Test,
	}
	manager, err := churn.InitManager(churnConfig)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: 1000,
		},
		ChurnConfig:  churnConfig,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		ChurnManager: manager,
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	api := createTestApi(t)
	return serveApiAndRetrieveEndpoint(t, api, endpoint)
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// entryFromResponse digs the entry object out of a decoded envelope.
func entryFromResponse(t *testing.T, response models.ResponseModel) map[string]any {
	t.Helper()
	data, ok := response.Data.(map[string]any)
	require.True(t, ok, "response data is not an object")
	entry, ok := data["entry"].(map[string]any)
	require.True(t, ok, "response data has no entry object")
	return entry
}

// listFromResponse digs the list payload out of a decoded envelope.
func listFromResponse(t *testing.T, response models.ResponseModel) []any {
	t.Helper()
	data, ok := response.Data.(map[string]any)
	require.True(t, ok, "response data is not an object")
	list, ok := data["list"].([]any)
	require.True(t, ok, "response data has no list payload")
	return list
}
