package services

import (
	"time"

	"moneymap/internal/models"
)

// FinancialRecordServicer defines the store contract for financial records.
// An empty result from a find is a valid, non-error outcome; the HTTP layer
// decides how to present it.
type FinancialRecordServicer interface {
	FindByUser(userID string) ([]models.FinancialRecord, error)
	FindByUserAndMonth(userID string, month, year int) ([]models.FinancialRecord, error)
	Create(draft FinancialRecordDraft) (*models.FinancialRecord, error)
	Replace(id string, draft FinancialRecordDraft) (*models.FinancialRecord, error)
	Delete(id string) (*models.FinancialRecord, error)
}

// InvestmentServicer defines the store contract for investments.
type InvestmentServicer interface {
	FindByUser(userID string) ([]models.Investment, error)
	FindByUserAndDateRange(userID string, start, end time.Time) ([]models.Investment, error)
	Create(draft InvestmentDraft) (*models.Investment, error)
	Replace(id string, draft InvestmentDraft) (*models.Investment, error)
	Delete(id string) (*models.Investment, error)
}
