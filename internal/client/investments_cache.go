package client

import (
	"context"
	"sync"

	apperrors "moneymap/internal/errors"
	"moneymap/internal/models"
)

// InvestmentsCache mirrors one user's investments in memory. Unlike
// RecordsCache it uses the refetch-all strategy: after a successful
// mutation the full set is fetched again and replaces the cache wholesale.
// One extra round trip buys a cache that always equals the store.
type InvestmentsCache struct {
	mu       sync.Mutex
	api      *API
	notifier Notifier

	userID      string
	investments []models.Investment
	gen         uint64
}

// NewInvestmentsCache creates an empty cache bound to the API client.
func NewInvestmentsCache(api *API, notifier Notifier) *InvestmentsCache {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &InvestmentsCache{api: api, notifier: notifier}
}

// SetIdentity binds the cache to a user and loads their investments.
func (c *InvestmentsCache) SetIdentity(ctx context.Context, userID string) error {
	c.mu.Lock()
	c.userID = userID
	c.gen++
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Refresh replaces the cached set with the store's current contents for the
// bound user.
func (c *InvestmentsCache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	userID := c.userID
	gen := c.gen
	c.mu.Unlock()

	if userID == "" {
		return nil
	}

	investments, err := c.api.FetchInvestments(ctx, userID)
	if err != nil {
		if IsNotFound(err) {
			investments = nil
		} else {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return nil
	}
	c.investments = investments
	return nil
}

// Add submits a new investment, then refetches the full set. Inverted date
// spans are rejected locally before any network call is made.
func (c *InvestmentsCache) Add(ctx context.Context, draft InvestmentDraft) error {
	if draft.StartDate.After(draft.EndDate) {
		c.notifier.Error(apperrors.ErrInvalidInvestmentSpan.Message)
		return apperrors.ErrInvalidInvestmentSpan
	}

	c.mu.Lock()
	draft.UserID = c.userID
	c.mu.Unlock()

	if _, err := c.api.CreateInvestment(ctx, draft); err != nil {
		c.notifier.Error("Failed to add investment: " + err.Error())
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		c.notifier.Error("Investment added, but refreshing the list failed: " + err.Error())
		return err
	}

	c.notifier.Success("Investment added successfully.")
	return nil
}

// Update replaces an investment, then refetches the full set.
func (c *InvestmentsCache) Update(ctx context.Context, id string, draft InvestmentDraft) error {
	if draft.StartDate.After(draft.EndDate) {
		c.notifier.Error(apperrors.ErrInvalidInvestmentSpan.Message)
		return apperrors.ErrInvalidInvestmentSpan
	}

	c.mu.Lock()
	draft.UserID = c.userID
	c.mu.Unlock()

	if _, err := c.api.ReplaceInvestment(ctx, id, draft); err != nil {
		c.notifier.Error("Failed to update investment: " + err.Error())
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		c.notifier.Error("Investment updated, but refreshing the list failed: " + err.Error())
		return err
	}

	c.notifier.Success("Investment updated successfully.")
	return nil
}

// Delete removes an investment, then refetches the full set.
func (c *InvestmentsCache) Delete(ctx context.Context, id string) error {
	if _, err := c.api.DeleteInvestment(ctx, id); err != nil {
		c.notifier.Error("Failed to delete investment: " + err.Error())
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		c.notifier.Error("Investment deleted, but refreshing the list failed: " + err.Error())
		return err
	}

	c.notifier.Success("Investment successfully deleted.")
	return nil
}

// Investments returns a copy of the cached set.
func (c *InvestmentsCache) Investments() []models.Investment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Investment, len(c.investments))
	copy(out, c.investments)
	return out
}

// Close invalidates the cache. In-flight responses landing afterwards are
// discarded.
func (c *InvestmentsCache) Close() {
	c.mu.Lock()
	c.gen++
	c.investments = nil
	c.userID = ""
	c.mu.Unlock()
}
