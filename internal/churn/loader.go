package churn

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// requiredColumns lists every dataset column the loader expects, keyed by
// normalized header name.
var requiredColumns = []string{
	"user_id",
	"attrition_flag",
	"customer_age",
	"gender",
	"dependent_count",
	"education_level",
	"marital_status",
	"income_category",
	"card_category",
	"months_on_book",
	"total_relationship_count",
	"months_inactive_12_mon",
	"contacts_count_12_mon",
	"credit_limit",
	"total_revolving_bal",
	"avg_open_to_buy",
	"total_amt_chng_q4_q1",
	"total_trans_amt",
	"total_trans_ct",
	"total_ct_chng_q4_q1",
	"avg_utilization_ratio",
}

// NormalizeHeader lower-cases a raw CSV header cell and replaces spaces with
// underscores so that arbitrary source casing maps onto the fixed schema.
func NormalizeHeader(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func rawDatasetBytes(source string, isLocalFile bool) (io.ReadCloser, error) {
	if isLocalFile {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("error opening churn dataset file: %w", err)
		}
		return f, nil
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("error downloading churn dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close() // nolint:errcheck
		return nil, fmt.Errorf("error downloading churn dataset: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// LoadResult carries the parsed records plus load accounting.
type LoadResult struct {
	Records     []Record
	SkippedRows int
}

// loadDataset reads and parses the churn CSV from either a URL or a local
// file. A missing column fails the whole load; a malformed row is skipped and
// counted.
func loadDataset(source string, isLocalFile bool) (*LoadResult, error) {
	body, err := rawDatasetBytes(source, isLocalFile)
	if err != nil {
		return nil, err
	}
	defer body.Close() // nolint:errcheck

	return parseDataset(body)
}

func parseDataset(r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading dataset header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[NormalizeHeader(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("dataset schema invalid: missing column %q", required)
		}
	}

	result := &LoadResult{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row (wrong field count, bad quoting) is
			// skipped rather than failing the whole load.
			result.SkippedRows++
			continue
		}

		record, err := parseRow(row, columns)
		if err != nil {
			result.SkippedRows++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

func parseRow(row []string, columns map[string]int) (Record, error) {
	cell := func(name string) string {
		return strings.TrimSpace(row[columns[name]])
	}

	var rec Record
	var err error

	if rec.UserID, err = strconv.ParseInt(cell("user_id"), 10, 64); err != nil {
		return Record{}, fmt.Errorf("invalid user_id: %w", err)
	}
	if rec.Outcome, err = ParseOutcome(cell("attrition_flag")); err != nil {
		return Record{}, err
	}
	if rec.Age, err = strconv.Atoi(cell("customer_age")); err != nil {
		return Record{}, fmt.Errorf("invalid customer_age: %w", err)
	}

	rec.Gender = cell("gender")
	rec.EducationLevel = cell("education_level")
	rec.MaritalStatus = cell("marital_status")
	rec.IncomeCategory = cell("income_category")
	rec.CardCategory = cell("card_category")

	intFields := []struct {
		name string
		dst  *int
	}{
		{"dependent_count", &rec.DependentCount},
		{"months_on_book", &rec.MonthsOnBook},
		{"total_relationship_count", &rec.RelationshipCount},
		{"months_inactive_12_mon", &rec.InactiveMonths12},
		{"contacts_count_12_mon", &rec.ContactsCount12},
		{"total_trans_ct", &rec.TotalTransCt},
	}
	for _, f := range intFields {
		if *f.dst, err = strconv.Atoi(cell(f.name)); err != nil {
			return Record{}, fmt.Errorf("invalid %s: %w", f.name, err)
		}
	}

	floatFields := []struct {
		name string
		dst  *float64
	}{
		{"credit_limit", &rec.CreditLimit},
		{"total_revolving_bal", &rec.TotalRevolvingBal},
		{"avg_open_to_buy", &rec.AvgOpenToBuy},
		{"total_amt_chng_q4_q1", &rec.AmtChangeQ4Q1},
		{"total_trans_amt", &rec.TotalTransAmt},
		{"total_ct_chng_q4_q1", &rec.CtChangeQ4Q1},
		{"avg_utilization_ratio", &rec.AvgUtilizationRatio},
	}
	for _, f := range floatFields {
		if *f.dst, err = strconv.ParseFloat(cell(f.name), 64); err != nil {
			return Record{}, fmt.Errorf("invalid %s: %w", f.name, err)
		}
	}

	rec.AgeGroup = AssignAgeGroup(rec.Age)

	return rec, nil
}
