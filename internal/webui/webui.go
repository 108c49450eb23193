package webui

import (
	"embed"
	"html/template"
	"net/http"

	"churnboard.openbanklabs.org/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

// WebUI serves the HTML dashboard on top of the shared application state.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

// renderPage executes the named page template inside the shared layout.
func (webUI *WebUI) renderPage(w http.ResponseWriter, page string, data any) {
	tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		webUI.Logger.Error("failed to render page", "page", page, "error", err)
	}
}
