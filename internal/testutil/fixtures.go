package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneymap/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a unique identity-provider style subject string.
func NewUserID() string {
	return fmt.Sprintf("auth0|user%d", nextID())
}

// CreateTestRecord creates a financial record with the given category and amount.
func CreateTestRecord(t *testing.T, db *gorm.DB, userID string, category models.RecordCategory, amount string) *models.FinancialRecord {
	t.Helper()
	return CreateTestRecordOnDate(t, db, userID, category, amount, time.Now())
}

// CreateTestRecordOnDate creates a financial record dated at the given time.
func CreateTestRecordOnDate(t *testing.T, db *gorm.DB, userID string, category models.RecordCategory, amount string, date time.Time) *models.FinancialRecord {
	t.Helper()

	record := &models.FinancialRecord{
		UserID:        userID,
		Date:          date,
		Description:   fmt.Sprintf("Test Record %d", nextID()),
		Amount:        decimal.RequireFromString(amount),
		Category:      category,
		PaymentMethod: models.PaymentCash,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return record
}

// CreateTestInvestment creates an investment spanning [start, end].
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, start, end time.Time) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		UserID:      userID,
		Description: fmt.Sprintf("Test Investment %d", nextID()),
		StartDate:   start,
		EndDate:     end,
		Amount:      decimal.NewFromInt(1000),
		Firm:        "Vanguard",
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}
