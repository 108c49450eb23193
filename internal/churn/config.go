package churn

import "churnboard.openbanklabs.org/internal/appconf"

// Config controls where the churn dataset is loaded from and where its SQLite
// projection lives.
type Config struct {
	DatasetPath string
	DBPath      string
	Env         appconf.Environment
	Verbose     bool
}
