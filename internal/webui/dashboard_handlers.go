package webui

import (
	"net/http"
	"net/url"

	"churnboard.openbanklabs.org/internal/analytics"
	"churnboard.openbanklabs.org/internal/churn"
	"churnboard.openbanklabs.org/internal/models"
)

var dimensionTitles = map[analytics.Dimension]string{
	analytics.DimensionAgeGroup:       "Age Group",
	analytics.DimensionEducationLevel: "Education Level",
	analytics.DimensionGender:         "Gender",
	analytics.DimensionIncomeCategory: "Income Category",
}

type overviewData struct {
	Title       string
	Summary     models.SummaryModel
	SkippedRows int
	Columns     []churn.ColumnDescription
}

func (webUI *WebUI) overviewHandler(w http.ResponseWriter, r *http.Request) {
	data := overviewData{
		Title:       "Overview",
		Summary:     models.NewSummaryModel(webUI.ChurnManager.Summary()),
		SkippedRows: webUI.ChurnManager.SkippedRows(),
		Columns:     churn.ColumnDescriptions(),
	}
	webUI.renderPage(w, "overview.html", data)
}

type dimensionTables struct {
	Title  string
	Counts models.CountTableModel
	Rates  models.RateTableModel
}

type edaData struct {
	Title         string
	Options       models.FilterOptionsModel
	Selected      map[string]map[string]bool
	FilteredTotal int
	Tables        []dimensionTables
}

func (webUI *WebUI) edaHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	educationLevels, err := webUI.ChurnManager.EducationLevels(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	genders, err := webUI.ChurnManager.Genders(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	incomeCategories, err := webUI.ChurnManager.IncomeCategories(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	options := models.FilterOptionsModel{
		AgeGroups:        churn.AgeGroupLabels(),
		EducationLevels:  educationLevels,
		Genders:          genders,
		IncomeCategories: incomeCategories,
	}

	params := r.URL.Query()
	filters := filterSetFromForm(params, options)
	filtered := analytics.ApplyFilters(webUI.ChurnManager.Records(), filters)

	tables := make([]dimensionTables, 0, len(analytics.Dimensions()))
	for _, dim := range analytics.Dimensions() {
		tables = append(tables, dimensionTables{
			Title:  dimensionTitles[dim],
			Counts: models.NewCountTableModel(dim, analytics.CountBy(filtered, dim), len(filtered)),
			Rates:  models.NewRateTableModel(dim, analytics.RateBy(filtered, dim)),
		})
	}

	data := edaData{
		Title:   "Exploratory Data Analysis",
		Options: options,
		Selected: map[string]map[string]bool{
			"ageGroups":        analytics.NewSelection(params["ageGroups"]...),
			"educationLevels":  analytics.NewSelection(params["educationLevels"]...),
			"genders":          analytics.NewSelection(params["genders"]...),
			"incomeCategories": analytics.NewSelection(params["incomeCategories"]...),
		},
		FilteredTotal: len(filtered),
		Tables:        tables,
	}
	webUI.renderPage(w, "eda.html", data)
}

// filterSetFromForm builds the aggregation filter set from the dashboard's
// multi-select form, where each selected value repeats the parameter. A
// dimension with nothing selected is all-inclusive; unconstrained age groups
// also admit records outside every bucket.
func filterSetFromForm(params url.Values, options models.FilterOptionsModel) analytics.FilterSet {
	pick := func(key string, all []string) analytics.Selection {
		if selected := params[key]; len(selected) > 0 {
			return analytics.NewSelection(selected...)
		}
		return analytics.NewSelection(all...)
	}

	filters := analytics.FilterSet{
		AgeGroups:        pick("ageGroups", options.AgeGroups),
		EducationLevels:  pick("educationLevels", options.EducationLevels),
		Genders:          pick("genders", options.Genders),
		IncomeCategories: pick("incomeCategories", options.IncomeCategories),
	}
	if len(params["ageGroups"]) == 0 {
		filters.AgeGroups[string(churn.AgeGroupUndefined)] = true
	}
	return filters
}

type placeholderData struct {
	Title string
}

func (webUI *WebUI) placeholderHandler(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webUI.renderPage(w, "placeholder.html", placeholderData{Title: title})
	}
}
