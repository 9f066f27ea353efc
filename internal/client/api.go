// Package client is the first-party client for the MoneyMap API. It mirrors
// a user's records in memory and keeps that mirror consistent with the
// remote store across mutations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"moneymap/internal/models"
)

// Error is a failed API response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// RecordDraft is the client-side payload for creating or replacing a
// financial record.
type RecordDraft struct {
	UserID        string          `json:"userId"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
}

// InvestmentDraft is the client-side payload for creating or replacing an
// investment.
type InvestmentDraft struct {
	UserID      string          `json:"userId"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Amount      decimal.Decimal `json:"amount"`
	Firm        string          `json:"firm"`
}

// API is a thin HTTP client over the record endpoints.
type API struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewAPI creates an API client for the given base URL.
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches a Bearer token to subsequent requests. Only needed when
// the server runs with identity verification enabled.
func (a *API) SetToken(token string) {
	a.token = token
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return &Error{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// FetchRecords retrieves all financial records for a user.
func (a *API) FetchRecords(ctx context.Context, userID string) ([]models.FinancialRecord, error) {
	var records []models.FinancialRecord
	if err := a.do(ctx, http.MethodGet, "/financial-records/getAllByUserID/"+userID, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchRecordsByMonth retrieves a user's records for one calendar month.
func (a *API) FetchRecordsByMonth(ctx context.Context, userID string, month, year int) ([]models.FinancialRecord, error) {
	path := fmt.Sprintf("/financial-records/getByUserAndMonth/%s?month=%d&year=%d", userID, month, year)
	var records []models.FinancialRecord
	if err := a.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateRecord inserts a new financial record and returns the stored state.
func (a *API) CreateRecord(ctx context.Context, draft RecordDraft) (*models.FinancialRecord, error) {
	var record models.FinancialRecord
	if err := a.do(ctx, http.MethodPost, "/financial-records", draft, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ReplaceRecord overwrites a record with the full desired state.
func (a *API) ReplaceRecord(ctx context.Context, id string, draft RecordDraft) (*models.FinancialRecord, error) {
	var record models.FinancialRecord
	if err := a.do(ctx, http.MethodPut, "/financial-records/"+id, draft, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteRecord removes a record and returns its prior state.
func (a *API) DeleteRecord(ctx context.Context, id string) (*models.FinancialRecord, error) {
	var resp struct {
		Message string                 `json:"message"`
		Record  models.FinancialRecord `json:"record"`
	}
	if err := a.do(ctx, http.MethodDelete, "/financial-records/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Record, nil
}

// FetchInvestments retrieves all investments for a user.
func (a *API) FetchInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	var investments []models.Investment
	if err := a.do(ctx, http.MethodGet, "/investments/getAllByUserID/"+userID, nil, &investments); err != nil {
		return nil, err
	}
	return investments, nil
}

// FetchInvestmentsByDateRange retrieves a user's investments fully contained
// in the inclusive [start, end] range.
func (a *API) FetchInvestmentsByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Investment, error) {
	path := fmt.Sprintf("/investments/getByUserAndDateRange/%s?startDate=%s&endDate=%s",
		userID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	var investments []models.Investment
	if err := a.do(ctx, http.MethodGet, path, nil, &investments); err != nil {
		return nil, err
	}
	return investments, nil
}

// CreateInvestment inserts a new investment and returns the stored state.
func (a *API) CreateInvestment(ctx context.Context, draft InvestmentDraft) (*models.Investment, error) {
	var investment models.Investment
	if err := a.do(ctx, http.MethodPost, "/investments", draft, &investment); err != nil {
		return nil, err
	}
	return &investment, nil
}

// ReplaceInvestment overwrites an investment with the full desired state.
func (a *API) ReplaceInvestment(ctx context.Context, id string, draft InvestmentDraft) (*models.Investment, error) {
	var investment models.Investment
	if err := a.do(ctx, http.MethodPut, "/investments/"+id, draft, &investment); err != nil {
		return nil, err
	}
	return &investment, nil
}

// DeleteInvestment removes an investment and returns its prior state.
func (a *API) DeleteInvestment(ctx context.Context, id string) (*models.Investment, error) {
	var resp struct {
		Message    string            `json:"message"`
		Investment models.Investment `json:"investment"`
	}
	if err := a.do(ctx, http.MethodDelete, "/investments/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Investment, nil
}
