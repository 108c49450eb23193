package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"churnboard.openbanklabs.org/internal/churn"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "templates/debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.ChurnManager

	switch dataType {
	case "summary":
		data = manager.Summary()
		title = "Churn Dataset - Summary"
	case "records":
		data = manager.Records()
		title = "Churn Dataset - Records"
	case "age_groups":
		data = churn.AgeGroupLabels()
		title = "Churn Dataset - Age Groups"
	case "columns":
		data = churn.ColumnDescriptions()
		title = "Churn Dataset - Columns"
	case "skipped":
		data = manager.SkippedRows()
		title = "Churn Dataset - Skipped Rows"
	case "filter_options":
		data, title = webUI.filterOptionsDebugData(r)
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, records, age_groups, columns, skipped, filter_options.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, title, data)
}

func (webUI *WebUI) filterOptionsDebugData(r *http.Request) (interface{}, string) {
	ctx := r.Context()
	manager := webUI.ChurnManager

	options := map[string][]string{
		"ageGroups": churn.AgeGroupLabels(),
	}
	if values, err := manager.EducationLevels(ctx); err == nil {
		options["educationLevels"] = values
	}
	if values, err := manager.Genders(ctx); err == nil {
		options["genders"] = values
	}
	if values, err := manager.IncomeCategories(ctx); err == nil {
		options["incomeCategories"] = values
	}
	return options, "Churn Dataset - Filter Options"
}
