package client

import (
	"context"
	"sync"

	"moneymap/internal/models"
)

// RecordsCache mirrors one user's financial records in memory. It uses the
// local-splice strategy: a mutation round-trips to the server first, and the
// confirmed record is then spliced into the cached set directly, with no
// refetch. A failed round-trip leaves the cache unchanged.
//
// The cache is scoped to a single identity. SetIdentity and Close invalidate
// any round-trip still in flight: its late response is discarded rather than
// applied.
type RecordsCache struct {
	mu       sync.Mutex
	api      *API
	notifier Notifier

	userID  string
	records []models.FinancialRecord
	gen     uint64
}

// NewRecordsCache creates an empty cache bound to the API client.
func NewRecordsCache(api *API, notifier Notifier) *RecordsCache {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &RecordsCache{api: api, notifier: notifier}
}

// SetIdentity binds the cache to a user and loads their records. Any
// previous identity's records are overwritten by the fetch.
func (c *RecordsCache) SetIdentity(ctx context.Context, userID string) error {
	c.mu.Lock()
	c.userID = userID
	c.gen++
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Refresh replaces the cached set with the store's current contents for the
// bound user. A "no records" response yields an empty cache, not an error.
func (c *RecordsCache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	userID := c.userID
	gen := c.gen
	c.mu.Unlock()

	if userID == "" {
		return nil
	}

	records, err := c.api.FetchRecords(ctx, userID)
	if err != nil {
		if IsNotFound(err) {
			records = nil
		} else {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return nil
	}
	c.records = records
	return nil
}

// Add submits a new record and appends the server-confirmed state to the
// cache. The owning userId always comes from the bound identity, never from
// the draft.
func (c *RecordsCache) Add(ctx context.Context, draft RecordDraft) error {
	c.mu.Lock()
	draft.UserID = c.userID
	gen := c.gen
	c.mu.Unlock()

	record, err := c.api.CreateRecord(ctx, draft)
	if err != nil {
		c.notifier.Error("Failed to add record: " + err.Error())
		return err
	}

	c.mu.Lock()
	if c.gen == gen {
		c.records = append(c.records, *record)
	}
	c.mu.Unlock()

	c.notifier.Success("Record added successfully.")
	return nil
}

// Update replaces a record on the server and splices the confirmed state
// over the cached entry with the same id.
func (c *RecordsCache) Update(ctx context.Context, id string, draft RecordDraft) error {
	c.mu.Lock()
	draft.UserID = c.userID
	gen := c.gen
	c.mu.Unlock()

	record, err := c.api.ReplaceRecord(ctx, id, draft)
	if err != nil {
		c.notifier.Error("Failed to update record: " + err.Error())
		return err
	}

	c.mu.Lock()
	if c.gen == gen {
		for i := range c.records {
			if c.records[i].ID == id {
				c.records[i] = *record
				break
			}
		}
	}
	c.mu.Unlock()

	c.notifier.Success("Record updated successfully.")
	return nil
}

// Delete removes a record on the server and splices it out of the cache.
func (c *RecordsCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	if _, err := c.api.DeleteRecord(ctx, id); err != nil {
		c.notifier.Error("Failed to delete record: " + err.Error())
		return err
	}

	c.mu.Lock()
	if c.gen == gen {
		kept := c.records[:0]
		for _, r := range c.records {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		c.records = kept
	}
	c.mu.Unlock()

	c.notifier.Success("Record successfully deleted.")
	return nil
}

// Records returns a copy of the cached record set.
func (c *RecordsCache) Records() []models.FinancialRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.FinancialRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Close invalidates the cache. In-flight responses landing afterwards are
// discarded.
func (c *RecordsCache) Close() {
	c.mu.Lock()
	c.gen++
	c.records = nil
	c.userID = ""
	c.mu.Unlock()
}
