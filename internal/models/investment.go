package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a long-horizon holding with a fixed start and end date.
// The startDate <= endDate invariant is enforced by clients before
// submission, not by the store.
type Investment struct {
	Base
	UserID      string          `gorm:"not null;index" json:"userId"`
	Description string          `gorm:"not null" json:"description"`
	StartDate   time.Time       `gorm:"not null" json:"startDate"`
	EndDate     time.Time       `gorm:"not null" json:"endDate"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Firm        string          `gorm:"not null" json:"firm"`
}
