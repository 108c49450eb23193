package churndb

import "fmt"

// InsertCustomerBatch adds customer rows to the database in one transaction.
func (c *Client) InsertCustomerBatch(customers []Customer) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO customers (
			user_id, attrition_flag, customer_age, gender, dependent_count,
			education_level, marital_status, income_category, card_category,
			months_on_book, total_relationship_count, months_inactive_12_mon,
			contacts_count_12_mon, credit_limit, total_revolving_bal,
			avg_open_to_buy, total_amt_chng_q4_q1, total_trans_amt,
			total_trans_ct, total_ct_chng_q4_q1, avg_utilization_ratio,
			age_group
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, customer := range customers {
		_, err := stmt.Exec(
			customer.UserID, customer.AttritionFlag, customer.Age, customer.Gender,
			customer.DependentCount, customer.EducationLevel, customer.MaritalStatus,
			customer.IncomeCategory, customer.CardCategory, customer.MonthsOnBook,
			customer.RelationshipCount, customer.InactiveMonths12, customer.ContactsCount12,
			customer.CreditLimit, customer.TotalRevolvingBal, customer.AvgOpenToBuy,
			customer.AmtChangeQ4Q1, customer.TotalTransAmt, customer.TotalTransCt,
			customer.CtChangeQ4Q1, customer.AvgUtilizationRatio, customer.AgeGroup,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting customer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
