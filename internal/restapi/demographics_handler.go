package restapi

import (
	"log/slog"
	"net/http"

	"churnboard.openbanklabs.org/internal/analytics"
	"churnboard.openbanklabs.org/internal/logging"
	"churnboard.openbanklabs.org/internal/models"
	"churnboard.openbanklabs.org/internal/utils"
)

// demographicsHandler returns outcome counts grouped by the path dimension,
// computed over the filtered record set.
func (api *RestAPI) demographicsHandler(w http.ResponseWriter, r *http.Request) {
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

	counts := analytics.CountBy(filtered, dim)
	table := models.NewCountTableModel(dim, counts, len(filtered))

	logger := logging.FromContext(r.Context()).With(slog.String("component", "demographics"))
	logging.LogOperation(logger, "count_table_computed",
		slog.String("dimension", string(dim)),
		slog.Int("filtered_total", len(filtered)))

	api.sendResponse(w, r, models.NewEntryResponse(table))
}
