package churndb

// Customer mirrors one row of the churn dataset in the SQLite projection.
type Customer struct {
	UserID              int64   // user_id
	AttritionFlag       string  // attrition_flag
	Age                 int     // customer_age
	Gender              string  // gender
	DependentCount      int     // dependent_count
	EducationLevel      string  // education_level
	MaritalStatus       string  // marital_status
	IncomeCategory      string  // income_category
	CardCategory        string  // card_category
	MonthsOnBook        int     // months_on_book
	RelationshipCount   int     // total_relationship_count
	InactiveMonths12    int     // months_inactive_12_mon
	ContactsCount12     int     // contacts_count_12_mon
	CreditLimit         float64 // credit_limit
	TotalRevolvingBal   float64 // total_revolving_bal
	AvgOpenToBuy        float64 // avg_open_to_buy
	AmtChangeQ4Q1       float64 // total_amt_chng_q4_q1
	TotalTransAmt       float64 // total_trans_amt
	TotalTransCt        int     // total_trans_ct
	CtChangeQ4Q1        float64 // total_ct_chng_q4_q1
	AvgUtilizationRatio float64 // avg_utilization_ratio
	AgeGroup            string  // age_group (derived)
}
