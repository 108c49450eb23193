package churndb

import "churnboard.openbanklabs.org/internal/appconf"

// Config holds configuration options for the Client
type Config struct {
	DBPath  string // Path to SQLite database file
	Env     appconf.Environment
	verbose bool // Verbose logging
}

func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	config := Config{
		DBPath:  dbPath,
		Env:     env,
		verbose: verbose,
	}

	return config
}
