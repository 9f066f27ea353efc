package views

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moneymap/internal/models"
)

func record(category models.RecordCategory, method models.PaymentMethod, amount string, date time.Time) models.FinancialRecord {
	return models.FinancialRecord{
		Date:          date,
		Description:   "test",
		Amount:        decimal.RequireFromString(amount),
		Category:      category,
		PaymentMethod: method,
	}
}

func assertTotals(t *testing.T, got []Total, want []Total) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Label != want[i].Label {
			t.Errorf("bucket %d: expected label %q, got %q", i, want[i].Label, got[i].Label)
		}
		if !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("bucket %d (%s): expected %s, got %s", i, want[i].Label, want[i].Amount, got[i].Amount)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []models.FinancialRecord{
		record(models.CategoryFood, models.PaymentCash, "10", day),
		record(models.CategoryRent, models.PaymentBankTransfer, "20", day),
		record(models.CategoryFood, models.PaymentDebitCard, "5", day),
	}

	totals := CategoryTotals(records)

	// Buckets appear in first-seen order with summed amounts.
	assertTotals(t, totals, []Total{
		{Label: "Food", Amount: decimal.NewFromInt(15)},
		{Label: "Rent", Amount: decimal.NewFromInt(20)},
	})
}

func TestCategoryTotalsEmpty(t *testing.T) {
	totals := CategoryTotals(nil)
	if len(totals) != 0 {
		t.Errorf("expected no buckets for empty input, got %v", totals)
	}
}

func TestPaymentMethodTotals(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []models.FinancialRecord{
		record(models.CategoryFood, models.PaymentCash, "1.50", day),
		record(models.CategoryRent, models.PaymentCash, "2.25", day),
		record(models.CategoryOther, models.PaymentCreditCard, "4", day),
	}

	totals := PaymentMethodTotals(records)

	assertTotals(t, totals, []Total{
		{Label: "Cash", Amount: decimal.RequireFromString("3.75")},
		{Label: "Credit Card", Amount: decimal.NewFromInt(4)},
	})
}

func TestDailyTotals(t *testing.T) {
	march15 := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	march15Later := time.Date(2024, 3, 15, 18, 30, 0, 0, time.Local)
	march16 := time.Date(2024, 3, 16, 12, 0, 0, 0, time.Local)

	records := []models.FinancialRecord{
		record(models.CategoryFood, models.PaymentCash, "10", march15),
		record(models.CategoryFood, models.PaymentCash, "7", march16),
		record(models.CategoryRent, models.PaymentCash, "5", march15Later),
	}

	totals := DailyTotals(records)

	// Same calendar day collapses into one point regardless of time of day.
	assertTotals(t, totals, []Total{
		{Label: "3/15/2024", Amount: decimal.NewFromInt(15)},
		{Label: "3/16/2024", Amount: decimal.NewFromInt(7)},
	})
}
