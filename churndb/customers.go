package churndb

import (
	"context"
	"fmt"
)

// categoryColumns whitelists the columns DistinctValues may query. Column
// names are interpolated into SQL, so anything outside this set is rejected.
var categoryColumns = map[string]bool{
	"gender":          true,
	"education_level": true,
	"marital_status":  true,
	"income_category": true,
	"card_category":   true,
	"age_group":       true,
}

// CountCustomers returns the total number of customer rows.
func (c *Client) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting customers: %w", err)
	}
	return count, nil
}

// CountByAttrition returns customer counts grouped by attrition flag.
func (c *Client) CountByAttrition(ctx context.Context) (map[string]int64, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT attrition_flag, COUNT(*) FROM customers GROUP BY attrition_flag`,
	)
	if err != nil {
		return nil, fmt.Errorf("error counting by attrition flag: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	counts := make(map[string]int64)
	for rows.Next() {
		var flag string
		var count int64
		if err := rows.Scan(&flag, &count); err != nil {
			return nil, err
		}
		counts[flag] = count
	}

	return counts, rows.Err()
}

// DistinctValues returns the distinct values of a categorical column, sorted
// ascending. Empty values (the undefined age group) are excluded.
func (c *Client) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if !categoryColumns[column] {
		return nil, fmt.Errorf("column %q is not a categorical column", column)
	}

	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM customers WHERE %s != '' ORDER BY %s`,
		column, column, column,
	)
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying distinct %s values: %w", column, err)
	}
	defer rows.Close() // nolint:errcheck

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}
