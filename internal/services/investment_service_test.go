package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moneymap/internal/testutil"
)

func validInvestmentDraft(userID string) InvestmentDraft {
	return InvestmentDraft{
		UserID:      userID,
		Description: "Index fund",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(5000),
		Firm:        "Vanguard",
	}
}

func TestInvestmentCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		userID := testutil.NewUserID()

		investment, err := svc.Create(validInvestmentDraft(userID))
		testutil.AssertNoError(t, err)

		if investment.ID == "" {
			t.Fatal("expected server-assigned ID")
		}
		if investment.Firm != "Vanguard" {
			t.Errorf("expected firm Vanguard, got %s", investment.Firm)
		}

		investments, err := svc.FindByUser(userID)
		testutil.AssertNoError(t, err)
		if len(investments) != 1 {
			t.Fatalf("expected 1 investment, got %d", len(investments))
		}
	})

	t.Run("missing_firm", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		draft := validInvestmentDraft(testutil.NewUserID())
		draft.Firm = ""
		_, err := svc.Create(draft)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("missing_dates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		draft := validInvestmentDraft(testutil.NewUserID())
		draft.StartDate = time.Time{}
		_, err := svc.Create(draft)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("inverted_span_is_accepted_by_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		draft := validInvestmentDraft(testutil.NewUserID())
		draft.StartDate, draft.EndDate = draft.EndDate, draft.StartDate

		_, err := svc.Create(draft)
		testutil.AssertNoError(t, err)
	})
}

func TestInvestmentFindByUserAndDateRange(t *testing.T) {
	t.Run("inclusive_containment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		userID := testutil.NewUserID()

		rangeStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		rangeEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

		// Exactly on both bounds: included.
		onBounds := testutil.CreateTestInvestment(t, db, userID, rangeStart, rangeEnd)
		// Strictly inside: included.
		inside := testutil.CreateTestInvestment(t, db, userID,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		// Starts before the range: excluded.
		testutil.CreateTestInvestment(t, db, userID,
			time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), rangeEnd)
		// Ends after the range: excluded.
		testutil.CreateTestInvestment(t, db, userID,
			rangeStart, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

		investments, err := svc.FindByUserAndDateRange(userID, rangeStart, rangeEnd)
		testutil.AssertNoError(t, err)
		if len(investments) != 2 {
			t.Fatalf("expected 2 investments in range, got %d", len(investments))
		}
		found := map[string]bool{}
		for _, inv := range investments {
			found[inv.ID] = true
		}
		if !found[onBounds.ID] || !found[inside.ID] {
			t.Error("expected the on-bounds and strictly-inside investments")
		}
	})

	t.Run("other_users_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestInvestment(t, db, testutil.NewUserID(), start, end)

		investments, err := svc.FindByUserAndDateRange(testutil.NewUserID(), start, end)
		testutil.AssertNoError(t, err)
		if len(investments) != 0 {
			t.Errorf("expected no investments for a different user, got %d", len(investments))
		}
	})
}

func TestInvestmentReplace(t *testing.T) {
	t.Run("overwrites_all_mutable_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		userID := testutil.NewUserID()

		original := testutil.CreateTestInvestment(t, db, userID,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))

		draft := validInvestmentDraft(userID)
		draft.Description = "Rebalanced portfolio"
		draft.Firm = "Fidelity"
		draft.Amount = decimal.NewFromInt(7500)

		updated, err := svc.Replace(original.ID, draft)
		testutil.AssertNoError(t, err)
		if updated.ID != original.ID {
			t.Errorf("id changed on replace: %s != %s", updated.ID, original.ID)
		}
		if updated.Firm != "Fidelity" {
			t.Errorf("expected replaced firm, got %s", updated.Firm)
		}
		if !updated.Amount.Equal(decimal.NewFromInt(7500)) {
			t.Errorf("expected replaced amount 7500, got %s", updated.Amount)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		_, err := svc.Replace("0191e2f8-0000-7000-8000-000000000000", validInvestmentDraft(testutil.NewUserID()))
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestInvestmentDelete(t *testing.T) {
	t.Run("returns_prior_state_and_removes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		userID := testutil.NewUserID()

		investment := testutil.CreateTestInvestment(t, db, userID,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))

		deleted, err := svc.Delete(investment.ID)
		testutil.AssertNoError(t, err)
		if deleted.ID != investment.ID {
			t.Errorf("expected prior state of %s, got %s", investment.ID, deleted.ID)
		}

		investments, err := svc.FindByUser(userID)
		testutil.AssertNoError(t, err)
		if len(investments) != 0 {
			t.Errorf("expected empty store after delete, got %d", len(investments))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		_, err := svc.Delete("0191e2f8-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}
