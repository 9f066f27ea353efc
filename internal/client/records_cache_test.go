package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moneymap/internal/models"
)

// recordServer is an in-memory stand-in for the record store endpoints.
type recordServer struct {
	mu       sync.Mutex
	records  map[string]models.FinancialRecord
	nextID   int
	requests int

	// failMutations makes every POST/PUT/DELETE answer 400.
	failMutations bool
	// blockMutations, when non-nil, holds each mutation until the channel
	// is closed.
	blockMutations chan struct{}
}

func newRecordServer() *recordServer {
	return &recordServer{records: map[string]models.FinancialRecord{}}
}

func (s *recordServer) seed(userID, description string) models.FinancialRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	record := models.FinancialRecord{
		Base:          models.Base{ID: fmt.Sprintf("0191e2f8-0000-7000-8000-%012d", s.nextID)},
		UserID:        userID,
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:   description,
		Amount:        decimal.NewFromInt(10),
		Category:      models.CategoryFood,
		PaymentMethod: models.PaymentCash,
	}
	s.records[record.ID] = record
	return record
}

func (s *recordServer) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *recordServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		block := s.blockMutations
		fail := s.failMutations
		s.mu.Unlock()

		if r.Method != http.MethodGet {
			if block != nil {
				<-block
			}
			if fail {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": "Failed to create a new record."})
				return
			}
		}

		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/financial-records/getAllByUserID/"):
			userID := strings.TrimPrefix(r.URL.Path, "/financial-records/getAllByUserID/")
			s.mu.Lock()
			var owned []models.FinancialRecord
			for _, rec := range s.records {
				if rec.UserID == userID {
					owned = append(owned, rec)
				}
			}
			s.mu.Unlock()
			if len(owned) == 0 {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "No records found for the user."})
				return
			}
			json.NewEncoder(w).Encode(owned)

		case r.Method == http.MethodPost && r.URL.Path == "/financial-records":
			var draft RecordDraft
			json.NewDecoder(r.Body).Decode(&draft)
			record := s.seed(draft.UserID, draft.Description)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(record)

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/financial-records/"):
			id := strings.TrimPrefix(r.URL.Path, "/financial-records/")
			var draft RecordDraft
			json.NewDecoder(r.Body).Decode(&draft)
			s.mu.Lock()
			record, ok := s.records[id]
			if ok {
				record.Description = draft.Description
				record.UserID = draft.UserID
				s.records[id] = record
			}
			s.mu.Unlock()
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "Record not found."})
				return
			}
			json.NewEncoder(w).Encode(record)

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/financial-records/"):
			id := strings.TrimPrefix(r.URL.Path, "/financial-records/")
			s.mu.Lock()
			record, ok := s.records[id]
			delete(s.records, id)
			s.mu.Unlock()
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "Record not found."})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Record successfully deleted.",
				"record":  record,
			})

		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
		}
	})
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func TestRecordsCacheSetIdentity(t *testing.T) {
	t.Run("loads_the_users_records", func(t *testing.T) {
		server := newRecordServer()
		server.seed("auth0|user1", "Groceries")
		server.seed("auth0|user1", "Rent")
		server.seed("auth0|other", "Not mine")
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		cache := NewRecordsCache(NewAPI(ts.URL), &recordingNotifier{})
		if err := cache.SetIdentity(context.Background(), "auth0|user1"); err != nil {
			t.Fatalf("SetIdentity failed: %v", err)
		}

		records := cache.Records()
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		for _, r := range records {
			if r.UserID != "auth0|user1" {
				t.Errorf("cached a record owned by %s", r.UserID)
			}
		}
	})

	t.Run("empty_store_yields_empty_cache", func(t *testing.T) {
		server := newRecordServer()
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		cache := NewRecordsCache(NewAPI(ts.URL), &recordingNotifier{})
		if err := cache.SetIdentity(context.Background(), "auth0|user1"); err != nil {
			t.Fatalf("expected empty store to not be an error, got: %v", err)
		}
		if len(cache.Records()) != 0 {
			t.Errorf("expected empty cache, got %d records", len(cache.Records()))
		}
	})
}

func TestRecordsCacheAdd(t *testing.T) {
	t.Run("appends_the_confirmed_record", func(t *testing.T) {
		server := newRecordServer()
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		notifier := &recordingNotifier{}
		cache := NewRecordsCache(NewAPI(ts.URL), notifier)
		cache.SetIdentity(context.Background(), "auth0|user1")

		err := cache.Add(context.Background(), RecordDraft{
			Description:   "Coffee",
			Amount:        decimal.NewFromInt(4),
			Category:      "Food",
			PaymentMethod: "Cash",
		})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		records := cache.Records()
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].ID == "" {
			t.Error("expected the server-confirmed record with an id")
		}
		if records[0].UserID != "auth0|user1" {
			t.Errorf("expected owner from bound identity, got %s", records[0].UserID)
		}
		if len(notifier.successes) != 1 {
			t.Errorf("expected 1 success notification, got %d", len(notifier.successes))
		}
	})

	t.Run("failed_mutation_leaves_cache_unchanged", func(t *testing.T) {
		server := newRecordServer()
		existing := server.seed("auth0|user1", "Groceries")
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		notifier := &recordingNotifier{}
		cache := NewRecordsCache(NewAPI(ts.URL), notifier)
		cache.SetIdentity(context.Background(), "auth0|user1")
		server.mu.Lock()
		server.failMutations = true
		server.mu.Unlock()

		err := cache.Add(context.Background(), RecordDraft{Description: "Coffee"})
		if err == nil {
			t.Fatal("expected Add to fail")
		}

		records := cache.Records()
		if len(records) != 1 || records[0].ID != existing.ID {
			t.Errorf("cache changed after a failed mutation: %v", records)
		}
		if len(notifier.errors) != 1 {
			t.Errorf("expected 1 error notification, got %d", len(notifier.errors))
		}
	})
}

func TestRecordsCacheUpdate(t *testing.T) {
	server := newRecordServer()
	record := server.seed("auth0|user1", "Groceries")
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	cache := NewRecordsCache(NewAPI(ts.URL), &recordingNotifier{})
	cache.SetIdentity(context.Background(), "auth0|user1")

	err := cache.Update(context.Background(), record.ID, RecordDraft{Description: "Weekly shop"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	records := cache.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Description != "Weekly shop" {
		t.Errorf("expected spliced description, got %s", records[0].Description)
	}
}

func TestRecordsCacheDelete(t *testing.T) {
	server := newRecordServer()
	keep := server.seed("auth0|user1", "Groceries")
	remove := server.seed("auth0|user1", "Rent")
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	cache := NewRecordsCache(NewAPI(ts.URL), &recordingNotifier{})
	cache.SetIdentity(context.Background(), "auth0|user1")

	if err := cache.Delete(context.Background(), remove.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	records := cache.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ID != keep.ID {
		t.Errorf("wrong record removed, kept %s", records[0].ID)
	}
}

func TestRecordsCacheClose(t *testing.T) {
	t.Run("clears_the_cache", func(t *testing.T) {
		server := newRecordServer()
		server.seed("auth0|user1", "Groceries")
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		cache := NewRecordsCache(NewAPI(ts.URL), &recordingNotifier{})
		cache.SetIdentity(context.Background(), "auth0|user1")
		cache.Close()

		if len(cache.Records()) != 0 {
			t.Error("expected empty cache after Close")
		}
	})

	t.Run("discards_mutations_confirmed_after_close", func(t *testing.T) {
		server := newRecordServer()
		server.blockMutations = make(chan struct{})
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		cache := NewRecordsCache(NewAPI(ts.URL), &recordingNotifier{})
		cache.SetIdentity(context.Background(), "auth0|user1")

		done := make(chan error, 1)
		go func() {
			done <- cache.Add(context.Background(), RecordDraft{Description: "Late"})
		}()

		// The mutation is in flight; invalidate the cache before the
		// server confirms it.
		time.Sleep(50 * time.Millisecond)
		cache.Close()
		close(server.blockMutations)

		if err := <-done; err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if len(cache.Records()) != 0 {
			t.Error("late confirmation was applied to a closed cache")
		}
	})
}
