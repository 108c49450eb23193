package restapi

import (
	"net/http"

	"churnboard.openbanklabs.org/internal/churn"
	"churnboard.openbanklabs.org/internal/models"
)

// filterOptionsHandler lists the selectable values per dimension. Age groups
// come back in bucket order; the other dimensions come from the dataset's
// SQLite projection, sorted.
func (api *RestAPI) filterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	educationLevels, err := api.ChurnManager.EducationLevels(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	genders, err := api.ChurnManager.Genders(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	incomeCategories, err := api.ChurnManager.IncomeCategories(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	options := models.FilterOptionsModel{
		AgeGroups:        churn.AgeGroupLabels(),
		EducationLevels:  educationLevels,
		Genders:          genders,
		IncomeCategories: incomeCategories,
	}
	api.sendResponse(w, r, models.NewEntryResponse(options))
}
