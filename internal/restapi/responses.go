package restapi

import (
	"encoding/json"
	"net/http"

	"churnboard.openbanklabs.org/internal/models"
)

// sendResponse writes a success envelope as JSON.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}

// sendNotFound writes a 404 envelope with an empty data payload.
func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	response := models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "resource not found",
		Version:     2,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode not found response", "error", err, "path", r.URL.Path)
	}
}
