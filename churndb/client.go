// Package churndb stores the churn dataset's SQLite projection. The table is
// written once when the dataset is loaded and is read-only afterwards.
package churndb

import (
	"database/sql"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Client is the entry point for the churn database
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		DB:     db,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}
