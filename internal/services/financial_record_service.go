package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "moneymap/internal/errors"
	"moneymap/internal/models"
)

// FinancialRecordDraft is a record payload prior to server-assigned id and
// timestamps. Replace takes the full desired state; partial updates are not
// merged.
type FinancialRecordDraft struct {
	UserID        string
	Date          time.Time
	Description   string
	Amount        decimal.Decimal
	Category      models.RecordCategory
	PaymentMethod models.PaymentMethod
}

// validate checks the draft against the schema. A zero date is filled with
// the current time, matching the store's default-to-now behavior.
func (d *FinancialRecordDraft) validate() error {
	if d.UserID == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "userId is required")
	}
	if d.Description == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if d.Amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must not be negative")
	}
	if !d.Category.Valid() {
		return apperrors.WithMessage(apperrors.ErrValidation, "invalid category")
	}
	if !d.PaymentMethod.Valid() {
		return apperrors.WithMessage(apperrors.ErrValidation, "invalid payment method")
	}
	if d.Date.IsZero() {
		d.Date = time.Now()
	}
	return nil
}

// financialRecordService handles financial record persistence and queries.
type financialRecordService struct {
	db *gorm.DB
}

// NewFinancialRecordService creates a new FinancialRecordServicer.
func NewFinancialRecordService(db *gorm.DB) FinancialRecordServicer {
	return &financialRecordService{db: db}
}

// FindByUser retrieves all financial records owned by a user.
func (s *financialRecordService) FindByUser(userID string) ([]models.FinancialRecord, error) {
	var records []models.FinancialRecord
	if err := s.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// FindByUserAndMonth retrieves a user's records whose date falls within the
// given calendar month, as the half-open interval [first day, first day of
// the next month).
func (s *financialRecordService) FindByUserAndMonth(userID string, month, year int) ([]models.FinancialRecord, error) {
	if month < 1 || month > 12 || year < 1900 || year > time.Now().Year() {
		return nil, apperrors.ErrInvalidMonthYear
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var records []models.FinancialRecord
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// Create validates the draft, assigns an id and timestamps, and persists it.
func (s *financialRecordService) Create(draft FinancialRecordDraft) (*models.FinancialRecord, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	record := &models.FinancialRecord{
		UserID:        draft.UserID,
		Date:          draft.Date,
		Description:   draft.Description,
		Amount:        draft.Amount,
		Category:      draft.Category,
		PaymentMethod: draft.PaymentMethod,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

// Replace overwrites all mutable fields of an existing record with the draft.
func (s *financialRecordService) Replace(id string, draft FinancialRecordDraft) (*models.FinancialRecord, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	var record models.FinancialRecord
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	record.UserID = draft.UserID
	record.Date = draft.Date
	record.Description = draft.Description
	record.Amount = draft.Amount
	record.Category = draft.Category
	record.PaymentMethod = draft.PaymentMethod

	if err := s.db.Save(&record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// Delete removes a record and returns its prior state for confirmation.
func (s *financialRecordService) Delete(id string) (*models.FinancialRecord, error) {
	var record models.FinancialRecord
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}
