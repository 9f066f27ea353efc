package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "moneymap/internal/errors"
	"moneymap/internal/models"
)

// InvestmentDraft is an investment payload prior to server-assigned id and
// timestamps. The store deliberately does not enforce startDate <= endDate;
// clients reject inverted spans before submission.
type InvestmentDraft struct {
	UserID      string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Amount      decimal.Decimal
	Firm        string
}

func (d *InvestmentDraft) validate() error {
	if d.UserID == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "userId is required")
	}
	if d.Description == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrValidation, "startDate and endDate are required")
	}
	if d.Amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must not be negative")
	}
	if d.Firm == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "firm is required")
	}
	return nil
}

// investmentService handles investment persistence and queries.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// FindByUser retrieves all investments owned by a user.
func (s *investmentService) FindByUser(userID string) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// FindByUserAndDateRange retrieves a user's investments fully contained in
// [start, end]: startDate >= start AND endDate <= end, both inclusive.
func (s *investmentService) FindByUserAndDateRange(userID string, start, end time.Time) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.
		Where("user_id = ? AND start_date >= ? AND end_date <= ?", userID, start, end).
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// Create validates the draft, assigns an id and timestamps, and persists it.
func (s *investmentService) Create(draft InvestmentDraft) (*models.Investment, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	investment := &models.Investment{
		UserID:      draft.UserID,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Amount:      draft.Amount,
		Firm:        draft.Firm,
	}
	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investment, nil
}

// Replace overwrites all mutable fields of an existing investment with the draft.
func (s *investmentService) Replace(id string, draft InvestmentDraft) (*models.Investment, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	var investment models.Investment
	if err := s.db.Where("id = ?", id).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	investment.UserID = draft.UserID
	investment.Description = draft.Description
	investment.StartDate = draft.StartDate
	investment.EndDate = draft.EndDate
	investment.Amount = draft.Amount
	investment.Firm = draft.Firm

	if err := s.db.Save(&investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investment, nil
}

// Delete removes an investment and returns its prior state for confirmation.
func (s *investmentService) Delete(id string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Where("id = ?", id).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investment, nil
}
