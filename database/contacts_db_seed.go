package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"crmserver/contacts"
)

// demoContacts is the starter data for fresh installations, so the
// dashboard and contact list are not empty on first run.
var demoContacts = []contacts.Record{
	{Name: "Rajesh Kumar", Phone: "9876543210", Email: "rajesh.kumar@example.in", Tags: []string{"personal-loan", "delhi"}},
	{Name: "Priya Sharma", Phone: "9123456789", Email: "priya.sharma@example.in", Tags: []string{"credit-card", "mumbai"}},
	{Name: "Amit Patel", Phone: "9988776655", Email: "", Tags: []string{"home-loan", "ahmedabad"}},
	{Name: "Sunita Reddy", Phone: "9812345678", Email: "sunita.reddy@example.in", Tags: []string{"insurance", "hyderabad"}},
	{Name: "Vikram Singh", Phone: "8876543211", Email: "vikram.singh@example.in", Tags: []string{"personal-loan", "jaipur"}},
	{Name: "Anita Desai", Phone: "7788996655", Email: "", Tags: []string{"mutual-funds", "pune"}},
}

// EnsureDemoContacts seeds starter contacts when the store is empty.
// In-memory databases are left untouched; tests build their own data.
func (db *ContactsDB) EnsureDemoContacts() error {
	if isInMemoryDB(db.path) {
		return nil
	}

	count, err := db.CountContacts()
	if err != nil {
		return fmt.Errorf("failed to check existing contacts: %w", err)
	}
	if count > 0 {
		return nil
	}

	records := make([]contacts.Record, len(demoContacts))
	for i, demo := range demoContacts {
		demo.ID = uuid.NewString()
		records[i] = demo
	}

	inserted, err := db.InsertContacts("", records)
	if err != nil {
		return fmt.Errorf("failed to seed demo contacts: %w", err)
	}
	log.Printf("[ContactsDB] Seeded %d demo contacts", inserted)
	return nil
}
