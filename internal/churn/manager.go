package churn

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"churnboard.openbanklabs.org/churndb"
)

// Summary holds the headline dataset metrics shown on the overview page.
type Summary struct {
	TotalCustomers    int
	ExistingCustomers int
	AttritedCustomers int
	// ChurnRatePct is the attrited share of all customers as a percentage.
	ChurnRatePct float64
}

// Manager loads the churn dataset once and provides read-only access to it.
// The record set is immutable after InitManager returns, so it is safe to
// share across concurrent requests without locking.
type Manager struct {
	source       string
	isLocalFile  bool
	records      []Record
	summary      Summary
	skippedRows  int
	lastLoaded   time.Time
	ChurnDB      *churndb.Client
	config       Config
	shutdownOnce sync.Once
}

// InitManager loads the dataset from the configured source (URL or local file
// path), derives the age group for every record, and builds the SQLite
// projection.
func InitManager(config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.DatasetPath, "http://") && !strings.HasPrefix(config.DatasetPath, "https://")

	result, err := loadDataset(config.DatasetPath, isLocalFile)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("dataset %s contains no parseable rows", config.DatasetPath)
	}

	manager := &Manager{
		source:      config.DatasetPath,
		isLocalFile: isLocalFile,
		records:     result.Records,
		summary:     summarize(result.Records),
		skippedRows: result.SkippedRows,
		lastLoaded:  time.Now(),
		config:      config,
	}

	db, err := buildChurnDB(config, result.Records)
	if err != nil {
		return nil, fmt.Errorf("error building churn database: %w", err)
	}
	manager.ChurnDB = db

	return manager, nil
}

func buildChurnDB(config Config, records []Record) (*churndb.Client, error) {
	dbConfig := churndb.NewConfig(config.DBPath, config.Env, config.Verbose)
	client, err := churndb.NewClient(dbConfig)
	if err != nil {
		return nil, err
	}

	customers := make([]churndb.Customer, len(records))
	for i, rec := range records {
		customers[i] = toCustomer(rec)
	}

	if err := client.InsertCustomerBatch(customers); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

func toCustomer(rec Record) churndb.Customer {
	return churndb.Customer{
		UserID:              rec.UserID,
		AttritionFlag:       string(rec.Outcome),
		Age:                 rec.Age,
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
		AgeGroup:            string(rec.AgeGroup),
	}
}

func summarize(records []Record) Summary {
	summary := Summary{TotalCustomers: len(records)}
	for _, rec := range records {
		if rec.Outcome == OutcomeAttrited {
			summary.AttritedCustomers++
		} else {
			summary.ExistingCustomers++
		}
	}
	if summary.TotalCustomers > 0 {
		summary.ChurnRatePct = float64(summary.AttritedCustomers) / float64(summary.TotalCustomers) * 100
	}
	return summary
}

// Shutdown releases the manager's database resources.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		if manager.ChurnDB != nil {
			_ = manager.ChurnDB.Close()
		}
	})
}

// Records returns every loaded record. Callers must treat the slice as
// read-only.
func (manager *Manager) Records() []Record {
	return manager.records
}

func (manager *Manager) Summary() Summary {
	return manager.summary
}

// SkippedRows reports how many dataset rows failed to parse during loading.
func (manager *Manager) SkippedRows() int {
	return manager.skippedRows
}

// EducationLevels returns the distinct education levels present in the
// dataset, sorted ascending.
func (manager *Manager) EducationLevels(ctx context.Context) ([]string, error) {
	return manager.ChurnDB.DistinctValues(ctx, "education_level")
}

// Genders returns the distinct genders present in the dataset.
func (manager *Manager) Genders(ctx context.Context) ([]string, error) {
	return manager.ChurnDB.DistinctValues(ctx, "gender")
}

// IncomeCategories returns the distinct income categories present in the
// dataset.
func (manager *Manager) IncomeCategories(ctx context.Context) ([]string, error) {
	return manager.ChurnDB.DistinctValues(ctx, "income_category")
}

// LogStatistics reports the loaded dataset's shape.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Info("churn dataset loaded",
		slog.String("source", manager.source),
		slog.Bool("local_file", manager.isLocalFile),
		slog.Time("loaded_at", manager.lastLoaded),
		slog.Int("records", manager.summary.TotalCustomers),
		slog.Int("existing", manager.summary.ExistingCustomers),
		slog.Int("attrited", manager.summary.AttritedCustomers),
		slog.Int("skipped_rows", manager.skippedRows),
	)
}
