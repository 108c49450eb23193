package restapi

import (
	"net/http"

	"churnboard.openbanklabs.org/internal/analytics"
	"churnboard.openbanklabs.org/internal/models"
	"churnboard.openbanklabs.org/internal/utils"
)

// ratesHandler returns per-category outcome percentages for the path
// dimension, normalized within each category value.
func (api *RestAPI) ratesHandler(w http.ResponseWriter, r *http.Request) {
	dim, err := analytics.ParseDimension(utils.ExtractParam(r, "dimension"))
	if err != nil {
		api.sendNotFound(w, r)
		return
	}

	filtered, err := api.filteredRecords(r)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	rates := analytics.RateBy(filtered, dim)
	table := models.NewRateTableModel(dim, rates)
	api.sendResponse(w, r, models.NewEntryResponse(table))
}
