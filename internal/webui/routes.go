package webui

import "net/http"

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", webUI.overviewHandler)
	mux.HandleFunc("GET /eda", webUI.edaHandler)
	mux.HandleFunc("GET /prediction", webUI.placeholderHandler("Prediction Model"))
	mux.HandleFunc("GET /evaluation", webUI.placeholderHandler("Model Evaluation"))
	mux.HandleFunc("GET /insights", webUI.placeholderHandler("Insight & Recommendation"))
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)
}
