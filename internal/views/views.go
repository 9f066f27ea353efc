// Package views computes derived aggregations over a cached record set.
// All functions are pure: they hold no state and are recomputed from the
// full cache on every change. Group ordering is first-seen.
package views

import (
	"github.com/shopspring/decimal"

	"moneymap/internal/models"
)

// Total is one aggregation bucket.
type Total struct {
	Label  string
	Amount decimal.Decimal
}

// displayDate is the day-precision layout used to bucket the time series.
const displayDate = "1/2/2006"

// CategoryTotals sums record amounts grouped by category, one entry per
// distinct category present in the records.
func CategoryTotals(records []models.FinancialRecord) []Total {
	return groupBy(records, func(r models.FinancialRecord) string {
		return string(r.Category)
	})
}

// PaymentMethodTotals sums record amounts grouped by payment method.
func PaymentMethodTotals(records []models.FinancialRecord) []Total {
	return groupBy(records, func(r models.FinancialRecord) string {
		return string(r.PaymentMethod)
	})
}

// DailyTotals sums record amounts grouped by local display date. Points
// appear in first-seen order, not chronological order.
func DailyTotals(records []models.FinancialRecord) []Total {
	return groupBy(records, func(r models.FinancialRecord) string {
		return r.Date.Local().Format(displayDate)
	})
}

func groupBy(records []models.FinancialRecord, key func(models.FinancialRecord) string) []Total {
	index := make(map[string]int)
	totals := make([]Total, 0, len(records))

	for _, r := range records {
		k := key(r)
		if i, ok := index[k]; ok {
			totals[i].Amount = totals[i].Amount.Add(r.Amount)
			continue
		}
		index[k] = len(totals)
		totals = append(totals, Total{Label: k, Amount: r.Amount})
	}
	return totals
}
