package restapi

import (
	"net/http"

	"churnboard.openbanklabs.org/internal/churn"
	"churnboard.openbanklabs.org/internal/models"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	summary := models.NewSummaryModel(api.ChurnManager.Summary())
	api.sendResponse(w, r, models.NewEntryResponse(summary))
}

func (api *RestAPI) columnsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(churn.ColumnDescriptions()))
}
