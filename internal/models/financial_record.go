package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordCategory classifies a financial record.
type RecordCategory string

const (
	CategoryFood          RecordCategory = "Food"
	CategoryRent          RecordCategory = "Rent"
	CategorySalary        RecordCategory = "Salary"
	CategoryUtilities     RecordCategory = "Utilities"
	CategoryEntertainment RecordCategory = "Entertainment"
	CategoryHealthcare    RecordCategory = "Healthcare"
	CategoryOther         RecordCategory = "Other"
)

// Valid reports whether the category is one of the known values.
func (c RecordCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryRent, CategorySalary, CategoryUtilities,
		CategoryEntertainment, CategoryHealthcare, CategoryOther:
		return true
	}
	return false
}

// PaymentMethod is how a financial record was paid.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "Credit Card"
	PaymentDebitCard    PaymentMethod = "Debit Card"
	PaymentCash         PaymentMethod = "Cash"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

// Valid reports whether the payment method is one of the known values.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCreditCard, PaymentDebitCard, PaymentCash, PaymentBankTransfer:
		return true
	}
	return false
}

// FinancialRecord is a single income or expense entry owned by a user.
// The user identifier is the identity provider's subject string; the server
// stores it as-is.
type FinancialRecord struct {
	Base
	UserID        string          `gorm:"not null;index" json:"userId"`
	Date          time.Time       `gorm:"not null" json:"date"`
	Description   string          `gorm:"not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Category      RecordCategory  `gorm:"not null" json:"category"`
	PaymentMethod PaymentMethod   `gorm:"not null" json:"paymentMethod"`
}
