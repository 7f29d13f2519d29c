package database

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"crmserver/contacts"
)

func newTestContactsDB(t *testing.T) *ContactsDB {
	t.Helper()

	db, err := NewContactsDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create contacts DB: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestContactsDB_InsertContactsSkipsExistingPhones(t *testing.T) {
	db := newTestContactsDB(t)

	first := []contacts.Record{
		{ID: "c1", Name: "Rajesh Kumar", Phone: "9876543210", Email: "rajesh@example.in", Tags: []string{"loan"}},
		{ID: "c2", Name: "Priya Sharma", Phone: "9123456789"},
	}
	inserted, err := db.InsertContacts("batch-1", first)
	if err != nil {
		t.Fatalf("InsertContacts returned error: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted, got %d", inserted)
	}

	second := []contacts.Record{
		{ID: "c3", Name: "Rajesh Again", Phone: "9876543210"},
		{ID: "c4", Name: "Amit Patel", Phone: "9988776655"},
	}
	inserted, err = db.InsertContacts("batch-2", second)
	if err != nil {
		t.Fatalf("InsertContacts returned error: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 inserted on second batch, got %d", inserted)
	}

	count, err := db.CountContacts()
	if err != nil {
		t.Fatalf("CountContacts returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 contacts total, got %d", count)
	}

	// The existing row must keep its original data.
	kept, err := db.GetContactByPhone("9876543210")
	if err != nil {
		t.Fatalf("GetContactByPhone returned error: %v", err)
	}
	if kept.Name != "Rajesh Kumar" || kept.ID != "c1" {
		t.Fatalf("expected original contact kept, got %+v", kept)
	}
}

func TestContactsDB_InsertContactsEmptyBatch(t *testing.T) {
	db := newTestContactsDB(t)

	inserted, err := db.InsertContacts("batch-1", nil)
	if err != nil {
		t.Fatalf("InsertContacts returned error: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected 0 inserted, got %d", inserted)
	}
}

func TestContactsDB_CreateContactDuplicatePhone(t *testing.T) {
	db := newTestContactsDB(t)

	record := contacts.Record{ID: "c1", Name: "Rajesh Kumar", Phone: "9876543210"}
	if err := db.CreateContact(record, ""); err != nil {
		t.Fatalf("CreateContact returned error: %v", err)
	}

	record.ID = "c2"
	err := db.CreateContact(record, "")
	if !errors.Is(err, ErrDuplicatePhone) {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}
}

func TestContactsDB_GetContactRoundTrip(t *testing.T) {
	db := newTestContactsDB(t)

	record := contacts.Record{
		ID:    "c1",
		Name:  "Priya Sharma",
		Phone: "9123456789",
		Email: "priya@example.in",
		Tags:  []string{"credit-card", "mumbai"},
	}
	if err := db.CreateContact(record, "batch-1"); err != nil {
		t.Fatalf("CreateContact returned error: %v", err)
	}

	got, err := db.GetContact("c1")
	if err != nil {
		t.Fatalf("GetContact returned error: %v", err)
	}
	if got.Name != record.Name || got.Phone != record.Phone || got.Email != record.Email {
		t.Fatalf("contact fields do not match: %+v", got)
	}
	if got.BatchID != "batch-1" {
		t.Fatalf("expected batch id batch-1, got %q", got.BatchID)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "credit-card" || got.Tags[1] != "mumbai" {
		t.Fatalf("tags did not round-trip: %v", got.Tags)
	}
	if got.CreatedAt == "" {
		t.Fatal("expected created_at to be populated")
	}
	if _, err := time.Parse(time.RFC3339, got.CreatedAt); err != nil {
		t.Fatalf("created_at is not RFC3339: %q", got.CreatedAt)
	}
}

func TestContactsDB_GetContactHandlesNulls(t *testing.T) {
	db := newTestContactsDB(t)

	_, err := db.conn.Exec(`INSERT INTO contacts (id, name, phone, email, batch_id)
		VALUES (?, ?, ?, NULL, NULL)`, "c1", "Amit Patel", "9988776655")
	if err != nil {
		t.Fatalf("failed to insert contact: %v", err)
	}

	got, err := db.GetContact("c1")
	if err != nil {
		t.Fatalf("GetContact returned error: %v", err)
	}
	if got.Email != "" || got.BatchID != "" {
		t.Fatalf("expected empty strings for nullable fields, got %+v", got)
	}
	if got.Tags != nil {
		t.Fatalf("expected nil tags for default value, got %v", got.Tags)
	}
}

func TestContactsDB_GetContactNotFound(t *testing.T) {
	db := newTestContactsDB(t)

	_, err := db.GetContact("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = db.GetContactByPhone("9876543210")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for phone lookup, got %v", err)
	}
}

func TestContactsDB_ListContactsFilters(t *testing.T) {
	db := newTestContactsDB(t)

	seed := []contacts.Record{
		{ID: "c1", Name: "Rajesh Kumar", Phone: "9876543210", Email: "rajesh@example.in", Tags: []string{"personal-loan", "delhi"}},
		{ID: "c2", Name: "Priya Sharma", Phone: "9123456789", Tags: []string{"credit-card", "mumbai"}},
		{ID: "c3", Name: "Amit Patel", Phone: "9988776655", Tags: []string{"personal-loan"}},
	}
	if _, err := db.InsertContacts("", seed); err != nil {
		t.Fatalf("InsertContacts returned error: %v", err)
	}

	// Search matches name, phone and email.
	result, total, err := db.ListContacts(ListOptions{Search: "priya"})
	if err != nil {
		t.Fatalf("ListContacts returned error: %v", err)
	}
	if total != 1 || len(result) != 1 || result[0].ID != "c2" {
		t.Fatalf("expected only Priya, got total=%d result=%+v", total, result)
	}

	result, total, err = db.ListContacts(ListOptions{Search: "98765"})
	if err != nil {
		t.Fatalf("ListContacts returned error: %v", err)
	}
	if total != 1 || result[0].ID != "c1" {
		t.Fatalf("expected phone search to find c1, got total=%d result=%+v", total, result)
	}

	// Tag filter matches the whole tag, not substrings of other tags.
	result, total, err = db.ListContacts(ListOptions{Tag: "personal-loan"})
	if err != nil {
		t.Fatalf("ListContacts returned error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 contacts with personal-loan, got %d", total)
	}

	_, total, err = db.ListContacts(ListOptions{Tag: "loan"})
	if err != nil {
		t.Fatalf("ListContacts returned error: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no contacts for partial tag, got %d", total)
	}

	// Paging caps the page but reports the full match count.
	result, total, err = db.ListContacts(ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("ListContacts returned error: %v", err)
	}
	if total != 3 || len(result) != 2 {
		t.Fatalf("expected total=3 page=2, got total=%d page=%d", total, len(result))
	}
}

func TestContactsDB_DeleteContact(t *testing.T) {
	db := newTestContactsDB(t)

	record := contacts.Record{ID: "c1", Name: "Rajesh Kumar", Phone: "9876543210"}
	if err := db.CreateContact(record, ""); err != nil {
		t.Fatalf("CreateContact returned error: %v", err)
	}

	if err := db.DeleteContact("c1"); err != nil {
		t.Fatalf("DeleteContact returned error: %v", err)
	}

	err := db.DeleteContact("c1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestContactsDB_AllTagSets(t *testing.T) {
	db := newTestContactsDB(t)

	seed := []contacts.Record{
		{ID: "c1", Name: "Rajesh Kumar", Phone: "9876543210", Tags: []string{"loan", "delhi"}},
		{ID: "c2", Name: "Priya Sharma", Phone: "9123456789"},
		{ID: "c3", Name: "Amit Patel", Phone: "9988776655", Tags: []string{"loan"}},
	}
	if _, err := db.InsertContacts("", seed); err != nil {
		t.Fatalf("InsertContacts returned error: %v", err)
	}

	sets, err := db.AllTagSets()
	if err != nil {
		t.Fatalf("AllTagSets returned error: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("expected 2 tag sets, got %d", len(sets))
	}
}

func TestContactsDB_SaveAndListBatches(t *testing.T) {
	db := newTestContactsDB(t)

	batches := []BatchSummary{
		{ID: "batch-a", Filename: "contacts.csv", TotalRows: 4, SuccessfulRecords: 1, ErrorRows: 1,
			DuplicateGroups: 1, Inserted: 1, Completeness: 25, Accuracy: 50, Consistency: 100},
		{ID: "batch-b", Filename: "leads.xlsx", TotalRows: 10, SuccessfulRecords: 10,
			Inserted: 8, SkippedExisting: 2, Completeness: 100, Accuracy: 100, Consistency: 100},
	}
	for _, batch := range batches {
		if err := db.SaveBatch(batch); err != nil {
			t.Fatalf("SaveBatch returned error: %v", err)
		}
	}

	got, err := db.RecentBatches(10)
	if err != nil {
		t.Fatalf("RecentBatches returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(got))
	}

	byID := make(map[string]BatchSummary, len(got))
	for _, batch := range got {
		if batch.CreatedAt == "" {
			t.Fatalf("expected created_at for batch %s", batch.ID)
		}
		batch.CreatedAt = ""
		byID[batch.ID] = batch
	}
	if byID["batch-a"] != batches[0] {
		t.Fatalf("batch-a did not round-trip: %+v", byID["batch-a"])
	}
	if byID["batch-b"] != batches[1] {
		t.Fatalf("batch-b did not round-trip: %+v", byID["batch-b"])
	}

	got, err = db.RecentBatches(1)
	if err != nil {
		t.Fatalf("RecentBatches returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected limit to apply, got %d batches", len(got))
	}
}

func TestContactsDB_EnsureDemoContactsSkipsInMemory(t *testing.T) {
	db := newTestContactsDB(t)

	if err := db.EnsureDemoContacts(); err != nil {
		t.Fatalf("EnsureDemoContacts returned error: %v", err)
	}

	count, err := db.CountContacts()
	if err != nil {
		t.Fatalf("CountContacts returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected in-memory DB to stay empty, got %d contacts", count)
	}
}

func TestContactsDB_EnsureDemoContactsSeedsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "contacts.db")
	db, err := NewContactsDB(dbPath)
	if err != nil {
		t.Fatalf("failed to create contacts DB: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := db.EnsureDemoContacts(); err != nil {
		t.Fatalf("EnsureDemoContacts returned error: %v", err)
	}

	count, err := db.CountContacts()
	if err != nil {
		t.Fatalf("CountContacts returned error: %v", err)
	}
	if count != len(demoContacts) {
		t.Fatalf("expected %d seeded contacts, got %d", len(demoContacts), count)
	}

	// A second call must not duplicate the seed data.
	if err := db.EnsureDemoContacts(); err != nil {
		t.Fatalf("EnsureDemoContacts returned error: %v", err)
	}
	count, err = db.CountContacts()
	if err != nil {
		t.Fatalf("CountContacts returned error: %v", err)
	}
	if count != len(demoContacts) {
		t.Fatalf("expected seed to run once, got %d contacts", count)
	}
}
