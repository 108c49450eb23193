// Package restapi serves the dashboard's JSON data feeds: dataset summary,
// filter options, demographic count and rate tables, and filtered customer
// pages. Handlers recompute their aggregates from the immutable record set on
// every request.
package restapi

import (
	"net/http"
	"time"

	"churnboard.openbanklabs.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}
