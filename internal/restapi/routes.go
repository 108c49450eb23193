package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Handler builds the API router with the full middleware chain: request
// logging and gzip compression around the router, rate limiting and API key
// validation per route.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()

	api.route(router, "/api/churn/summary.json", api.summaryHandler)
	api.route(router, "/api/churn/columns.json", api.columnsHandler)
	api.route(router, "/api/churn/filter-options.json", api.filterOptionsHandler)
	api.route(router, "/api/churn/customers.json", api.customersHandler)
	api.route(router, "/api/churn/demographics/:dimension", api.demographicsHandler)
	api.route(router, "/api/churn/rates/:dimension", api.ratesHandler)

	return api.requestLoggingMiddleware(applyGzipMiddleware(router))
}

func (api *RestAPI) route(router *httprouter.Router, path string, handler handlerFunc) {
	chain := validateAPIKey(api, handler)
	if api.rateLimiter != nil {
		chain = api.rateLimiter(chain)
	}
	router.Handler(http.MethodGet, path, chain)
}
