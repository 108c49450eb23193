package churn

import "fmt"

// Outcome is the binary attrition label attached to every customer record.
type Outcome string

const (
	OutcomeExisting Outcome = "Existing"
	OutcomeAttrited Outcome = "Attrited"
)

// ParseOutcome converts the dataset's attrition flag labels into an Outcome.
func ParseOutcome(label string) (Outcome, error) {
	switch label {
	case "Existing Customer", "Existing":
		return OutcomeExisting, nil
	case "Attrited Customer", "Attrited":
		return OutcomeAttrited, nil
	default:
		return "", fmt.Errorf("unknown attrition flag: %q", label)
	}
}

// Record is one customer row from the churn dataset. The dataset is validated
// at load time, so downstream consumers can rely on every field being present
// and typed. AgeGroup is derived from Age once during loading.
type Record struct {
	UserID              int64
	Outcome             Outcome
	Age                 int
	Gender              string
	DependentCount      int
	EducationLevel      string
	MaritalStatus       string
	IncomeCategory      string
	CardCategory        string
	MonthsOnBook        int
	RelationshipCount   int
	InactiveMonths12    int
	ContactsCount12     int
	CreditLimit         float64
	TotalRevolvingBal   float64
	AvgOpenToBuy        float64
	AmtChangeQ4Q1       float64
	TotalTransAmt       float64
	TotalTransCt        int
	CtChangeQ4Q1        float64
	AvgUtilizationRatio float64
	AgeGroup            AgeGroup
}

// ColumnDescription describes one dataset column for the overview page.
type ColumnDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// ColumnDescriptions returns the dataset overview table shown on the
// dashboard's overview page.
func ColumnDescriptions() []ColumnDescription {
	return []ColumnDescription{
		{"user_id", "Customer account number", "Identifier"},
		{"attrition_flag", "Customer status (Existing or Attrited)", "Target"},
		{"customer_age", "Age of the customer", "Numerical"},
		{"gender", "Gender of customer", "Categorical"},
		{"dependent_count", "Number of dependents", "Numerical"},
		{"education_level", "Customer education level", "Categorical"},
		{"marital_status", "Customer marital status", "Categorical"},
		{"income_category", "Customer income category", "Categorical"},
		{"card_category", "Type of credit card used", "Categorical"},
		{"months_on_book", "Length of relationship with bank (months)", "Numerical"},
		{"total_relationship_count", "Number of bank products used", "Numerical"},
		{"months_inactive_12_mon", "Inactive months in last 12 months", "Numerical"},
		{"contacts_count_12_mon", "Number of contacts in last 12 months", "Numerical"},
		{"credit_limit", "Credit card limit", "Numerical"},
		{"total_revolving_bal", "Total revolving balance", "Numerical"},
		{"avg_open_to_buy", "Remaining available credit", "Numerical"},
		{"total_amt_chng_q4_q1", "Transaction amount change from Q4 to Q1", "Numerical"},
		{"total_trans_amt", "Total transaction amount in last 12 months", "Numerical"},
		{"total_trans_ct", "Total transaction count in last 12 months", "Numerical"},
		{"total_ct_chng_q4_q1", "Transaction count change from Q4 to Q1", "Numerical"},
		{"avg_utilization_ratio", "Percentage of credit card usage", "Numerical"},
	}
}
