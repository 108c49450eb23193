package models

import "churnboard.openbanklabs.org/internal/churn"

// CustomerModel is the response shape for one customer record.
type CustomerModel struct {
	UserID              int64   `json:"userId"`
	Outcome             string  `json:"outcome"`
	Age                 int     `json:"age"`
	AgeGroup            string  `json:"ageGroup,omitempty"`
	Gender              string  `json:"gender"`
	DependentCount      int     `json:"dependentCount"`
	EducationLevel      string  `json:"educationLevel"`
	MaritalStatus       string  `json:"maritalStatus"`
	IncomeCategory      string  `json:"incomeCategory"`
	CardCategory        string  `json:"cardCategory"`
	MonthsOnBook        int     `json:"monthsOnBook"`
	RelationshipCount   int     `json:"relationshipCount"`
	InactiveMonths12    int     `json:"inactiveMonths12Mon"`
	ContactsCount12     int     `json:"contactsCount12Mon"`
	CreditLimit         float64 `json:"creditLimit"`
	TotalRevolvingBal   float64 `json:"totalRevolvingBal"`
	AvgOpenToBuy        float64 `json:"avgOpenToBuy"`
	AmtChangeQ4Q1       float64 `json:"totalAmtChngQ4Q1"`
	TotalTransAmt       float64 `json:"totalTransAmt"`
	TotalTransCt        int     `json:"totalTransCt"`
	CtChangeQ4Q1        float64 `json:"totalCtChngQ4Q1"`
	AvgUtilizationRatio float64 `json:"avgUtilizationRatio"`
}

// NewCustomerModel converts a record into its response shape.
func NewCustomerModel(rec churn.Record) CustomerModel {
	return CustomerModel{
		UserID:              rec.UserID,
		Outcome:             string(rec.Outcome),
		Age:                 rec.Age,
		AgeGroup:            string(rec.AgeGroup),
		Gender:              rec.Gender,
		DependentCount:      rec.DependentCount,
		EducationLevel:      rec.EducationLevel,
		MaritalStatus:       rec.MaritalStatus,
		IncomeCategory:      rec.IncomeCategory,
		CardCategory:        rec.CardCategory,
		MonthsOnBook:        rec.MonthsOnBook,
		RelationshipCount:   rec.RelationshipCount,
		InactiveMonths12:    rec.InactiveMonths12,
		ContactsCount12:     rec.ContactsCount12,
		CreditLimit:         rec.CreditLimit,
		TotalRevolvingBal:   rec.TotalRevolvingBal,
		AvgOpenToBuy:        rec.AvgOpenToBuy,
		AmtChangeQ4Q1:       rec.AmtChangeQ4Q1,
		TotalTransAmt:       rec.TotalTransAmt,
		TotalTransCt:        rec.TotalTransCt,
		CtChangeQ4Q1:        rec.CtChangeQ4Q1,
		AvgUtilizationRatio: rec.AvgUtilizationRatio,
	}
}

// NewCustomerList converts records into response shapes, preserving order.
func NewCustomerList(records []churn.Record) []CustomerModel {
	customers := make([]CustomerModel, len(records))
	for i, rec := range records {
		customers[i] = NewCustomerModel(rec)
	}
	return customers
}
