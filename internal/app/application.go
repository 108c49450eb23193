package app

import (
	"log/slog"

	"churnboard.openbanklabs.org/internal/appconf"
	"churnboard.openbanklabs.org/internal/churn"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: configuration, a structured logger, and the loaded churn
// dataset.
type Application struct {
	Config       appconf.Config
	ChurnConfig  churn.Config
	Logger       *slog.Logger
	ChurnManager *churn.Manager
}
