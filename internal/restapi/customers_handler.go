package restapi

import (
	"net/http"

	"churnboard.openbanklabs.org/internal/models"
	"churnboard.openbanklabs.org/internal/utils"
)

const (
	defaultCustomerLimit = 100
	maxCustomerLimit     = 1000
)

// customersHandler returns the filtered record sequence, capped at the
// requested limit. Order is dataset order.
func (api *RestAPI) customersHandler(w http.ResponseWriter, r *http.Request) {
	limit, fieldErrors := utils.ParseLimitParam(r.URL.Query(), "limit", defaultCustomerLimit, maxCustomerLimit, nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	filtered, err := api.filteredRecords(r)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	api.sendResponse(w, r, models.NewListResponse(models.NewCustomerList(filtered)))
}
