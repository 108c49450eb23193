package restapi

import (
	"net/http"

	"churnboard.openbanklabs.org/internal/analytics"
	"churnboard.openbanklabs.org/internal/churn"
	"churnboard.openbanklabs.org/internal/utils"
)

// filterSetFromRequest builds the aggregation filter set from the request's
// multi-select query parameters. An absent parameter means the dimension is
// all-inclusive; a present-but-empty one is an explicit empty selection.
func (api *RestAPI) filterSetFromRequest(r *http.Request) (analytics.FilterSet, error) {
	params := r.URL.Query()
	ctx := r.Context()

	var filters analytics.FilterSet

	if values, present := utils.ParseMultiSelectParam(params, "ageGroups"); present {
		filters.AgeGroups = analytics.NewSelection(values...)
	} else {
		// No age-group requirement: admit every bucket plus undefined, so
		// out-of-bucket ages still reach the non-age-based tables. An
		// explicit selection of concrete buckets never admits them.
		filters.AgeGroups = analytics.NewSelection(churn.AgeGroupLabels()...)
		filters.AgeGroups[string(churn.AgeGroupUndefined)] = true
	}

	if values, present := utils.ParseMultiSelectParam(params, "educationLevels"); present {
		filters.EducationLevels = analytics.NewSelection(values...)
	} else {
		all, err := api.ChurnManager.EducationLevels(ctx)
		if err != nil {
			return analytics.FilterSet{}, err
		}
		filters.EducationLevels = analytics.NewSelection(all...)
	}

	if values, present := utils.ParseMultiSelectParam(params, "genders"); present {
		filters.Genders = analytics.NewSelection(values...)
	} else {
		all, err := api.ChurnManager.Genders(ctx)
		if err != nil {
			return analytics.FilterSet{}, err
		}
		filters.Genders = analytics.NewSelection(all...)
	}

	if values, present := utils.ParseMultiSelectParam(params, "incomeCategories"); present {
		filters.IncomeCategories = analytics.NewSelection(values...)
	} else {
		all, err := api.ChurnManager.IncomeCategories(ctx)
		if err != nil {
			return analytics.FilterSet{}, err
		}
		filters.IncomeCategories = analytics.NewSelection(all...)
	}

	return filters, nil
}

// filteredRecords applies the request's filter set to the full record set.
func (api *RestAPI) filteredRecords(r *http.Request) ([]churn.Record, error) {
	filters, err := api.filterSetFromRequest(r)
	if err != nil {
		return nil, err
	}
	return analytics.ApplyFilters(api.ChurnManager.Records(), filters), nil
}
