package churndb

import (
	"database/sql"
	"fmt"

	"churnboard.openbanklabs.org/internal/appconf"
)

// createDB creates a new SQLite database with the customers table and its
// category indexes.
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test environment must use an in-memory database, got %q", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	if err := createCustomersTable(tx); err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, err
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_customers_age_group ON customers(age_group);
		CREATE INDEX IF NOT EXISTS idx_customers_education_level ON customers(education_level);
		CREATE INDEX IF NOT EXISTS idx_customers_gender ON customers(gender);
		CREATE INDEX IF NOT EXISTS idx_customers_income_category ON customers(income_category);
		CREATE INDEX IF NOT EXISTS idx_customers_attrition_flag ON customers(attrition_flag);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createCustomersTable(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS customers (
			user_id INTEGER PRIMARY KEY,
			attrition_flag TEXT NOT NULL,
			customer_age INTEGER NOT NULL,
			gender TEXT NOT NULL,
			dependent_count INTEGER NOT NULL,
			education_level TEXT NOT NULL,
			marital_status TEXT NOT NULL,
			income_category TEXT NOT NULL,
			card_category TEXT NOT NULL,
			months_on_book INTEGER NOT NULL,
			total_relationship_count INTEGER NOT NULL,
			months_inactive_12_mon INTEGER NOT NULL,
			contacts_count_12_mon INTEGER NOT NULL,
			credit_limit REAL NOT NULL,
			total_revolving_bal REAL NOT NULL,
			avg_open_to_buy REAL NOT NULL,
			total_amt_chng_q4_q1 REAL NOT NULL,
			total_trans_amt REAL NOT NULL,
			total_trans_ct INTEGER NOT NULL,
			total_ct_chng_q4_q1 REAL NOT NULL,
			avg_utilization_ratio REAL NOT NULL,
			age_group TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("error creating customers table: %w", err)
	}
	return nil
}
