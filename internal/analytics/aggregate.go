package analytics

import "churnboard.openbanklabs.org/internal/churn"

// TableKey addresses one (category value, outcome) cell of a count or rate
// table.
type TableKey struct {
	Value   string
	Outcome churn.Outcome
}

// CountTable maps (category value, outcome) to an absolute record count.
// Category values with no matching records are absent, never zero-filled.
type CountTable map[TableKey]int

// RateTable maps (category value, outcome) to a percentage in [0, 100],
// normalized within each category value and rounded to one decimal.
type RateTable map[TableKey]float64

// CountBy groups records by the dimension's value and outcome. Records whose
// age group is undefined are excluded from age-group tables only; other
// dimensions still count them.
func CountBy(records []churn.Record, dim Dimension) CountTable {
	table := make(CountTable)
	for _, rec := range records {
		value := dim.value(rec)
		if value == "" {
			continue
		}
		table[TableKey{Value: value, Outcome: rec.Outcome}]++
	}
	return table
}

// RateBy computes per-outcome percentages for each category value present in
// the records, normalized within the value's row. Percentages are rounded
// half-up to one decimal, so a row's outcomes sum to 100 within ±0.1. A
// category value with a zero total is omitted rather than divided by.
func RateBy(records []churn.Record, dim Dimension) RateTable {
	counts := CountBy(records, dim)

	totals := make(map[string]int)
	for key, count := range counts {
		totals[key.Value] += count
	}

	rates := make(RateTable, len(counts))
	for key, count := range counts {
		total := totals[key.Value]
		if total == 0 {
			// Cannot happen with tables built by CountBy, but guards against
			// externally constructed inputs.
			continue
		}
		rates[key] = roundRate(100 * float64(count) / float64(total))
	}
	return rates
}

// Values returns the distinct category values present in the table, in
// unspecified order.
func (t CountTable) Values() []string {
	seen := make(map[string]bool)
	var values []string
	for key := range t {
		if !seen[key.Value] {
			seen[key.Value] = true
			values = append(values, key.Value)
		}
	}
	return values
}

// Values returns the distinct category values present in the table, in
// unspecified order.
func (t RateTable) Values() []string {
	seen := make(map[string]bool)
	var values []string
	for key := range t {
		if !seen[key.Value] {
			seen[key.Value] = true
			values = append(values, key.Value)
		}
	}
	return values
}

// Total sums every cell of the table.
func (t CountTable) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}
