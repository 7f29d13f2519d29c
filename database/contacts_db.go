package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"crmserver/contacts"
)

// Sentinel errors surfaced to the service layer.
var (
	ErrNotFound       = errors.New("contact not found")
	ErrDuplicatePhone = errors.New("phone number already exists")
)

// DBConfig holds connection pool settings.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ContactsDB wraps the SQLite store for contacts and import history.
type ContactsDB struct {
	conn *sql.DB
	path string
}

// StoredContact is one persisted contact row. CreatedAt is normalized to
// RFC3339 regardless of how the driver returns it.
type StoredContact struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	BatchID   string   `json:"batch_id,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// BatchSummary is the persisted outcome of one import run, shown on the
// dashboard and the import history views.
type BatchSummary struct {
	ID                string  `json:"id"`
	Filename          string  `json:"filename"`
	TotalRows         int     `json:"total_rows"`
	SuccessfulRecords int     `json:"successful_records"`
	ErrorRows         int     `json:"error_rows"`
	DuplicateGroups   int     `json:"duplicate_groups"`
	Inserted          int     `json:"inserted"`
	SkippedExisting   int     `json:"skipped_existing"`
	Completeness      float64 `json:"completeness"`
	Accuracy          float64 `json:"accuracy"`
	Consistency       float64 `json:"consistency"`
	CreatedAt         string  `json:"created_at,omitempty"`
}

// ListOptions filters and pages contact listings.
type ListOptions struct {
	Search string
	Tag    string
	Limit  int
	Offset int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// NewContactsDB opens (or creates) the contact store at dbPath with
// default pooling.
func NewContactsDB(dbPath string) (*ContactsDB, error) {
	config := DBConfig{}

	// In-memory SQLite needs exactly one connection; every further
	// connection would see a fresh empty database without the schema.
	if isInMemoryDB(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewContactsDBWithConfig(dbPath, config)
}

// isInMemoryDB reports whether the path refers to in-memory SQLite.
func isInMemoryDB(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	if strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory") {
		return true
	}
	return false
}

// NewContactsDBWithConfig opens the contact store with explicit pooling.
func NewContactsDBWithConfig(dbPath string, config DBConfig) (*ContactsDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts database: %w", err)
	}

	// SQLite degrades under many concurrent connections; keep the pool
	// small unless the caller insists otherwise.
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping contacts database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL lets readers run while an import batch is being written.
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Printf("[ContactsDB] Warning: failed to enable WAL mode: %v", err)
	}

	db := &ContactsDB{conn: conn, path: dbPath}
	if err := db.createTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize contacts schema: %w", err)
	}
	return db, nil
}

// Close closes the underlying connection pool.
func (db *ContactsDB) Close() error {
	return db.conn.Close()
}

// Ping verifies the store is reachable.
func (db *ContactsDB) Ping() error {
	return db.conn.Ping()
}

// createTables applies the schema. Statements are idempotent.
func (db *ContactsDB) createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS contacts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			email TEXT,
			tags TEXT NOT NULL DEFAULT '[]',
			batch_id TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_phone ON contacts(phone)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_batch ON contacts(batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_created ON contacts(created_at)`,
		`CREATE TABLE IF NOT EXISTS import_batches (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			total_rows INTEGER NOT NULL DEFAULT 0,
			successful_records INTEGER NOT NULL DEFAULT 0,
			error_rows INTEGER NOT NULL DEFAULT 0,
			duplicate_groups INTEGER NOT NULL DEFAULT 0,
			inserted INTEGER NOT NULL DEFAULT 0,
			skipped_existing INTEGER NOT NULL DEFAULT 0,
			completeness REAL NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			consistency REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_batches_created ON import_batches(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}

// InsertContacts stores a batch of import records inside one
// transaction. Records whose phone already exists in the store are
// skipped silently; the returned count is the number actually inserted.
// This is the second dedupe level: the import pipeline only dedupes
// within its own batch.
func (db *ContactsDB) InsertContacts(batchID string, records []contacts.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO contacts (id, name, phone, email, tags, batch_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(phone) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, record := range records {
		tagsJSON, err := marshalTags(record.Tags)
		if err != nil {
			return 0, err
		}
		res, err := stmt.Exec(record.ID, record.Name, record.Phone, record.Email, tagsJSON, nullIfEmpty(batchID))
		if err != nil {
			return 0, fmt.Errorf("failed to insert contact %s: %w", record.Phone, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read insert result: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}
	return inserted, nil
}

// CreateContact stores one contact. Returns ErrDuplicatePhone when the
// phone number is already present.
func (db *ContactsDB) CreateContact(record contacts.Record, batchID string) error {
	tagsJSON, err := marshalTags(record.Tags)
	if err != nil {
		return err
	}

	res, err := db.conn.Exec(`INSERT INTO contacts (id, name, phone, email, tags, batch_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(phone) DO NOTHING`,
		record.ID, record.Name, record.Phone, record.Email, tagsJSON, nullIfEmpty(batchID))
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return ErrDuplicatePhone
	}
	return nil
}

// GetContact loads one contact by id.
func (db *ContactsDB) GetContact(id string) (*StoredContact, error) {
	row := db.conn.QueryRow(`SELECT id, name, phone, email, tags, batch_id, created_at
		FROM contacts WHERE id = ?`, id)
	return scanContact(row)
}

// GetContactByPhone loads one contact by its standardized phone number.
func (db *ContactsDB) GetContactByPhone(phone string) (*StoredContact, error) {
	row := db.conn.QueryRow(`SELECT id, name, phone, email, tags, batch_id, created_at
		FROM contacts WHERE phone = ?`, phone)
	return scanContact(row)
}

// ListContacts returns a page of contacts plus the total match count.
func (db *ContactsDB) ListContacts(opts ListOptions) ([]StoredContact, int, error) {
	where, args := buildContactFilter(opts)

	total := 0
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT id, name, phone, email, tags, batch_id, created_at FROM contacts` +
		where + ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	result := make([]StoredContact, 0, limit)
	for rows.Next() {
		contact, err := scanContactRow(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return result, total, nil
}

// buildContactFilter renders the WHERE clause for ListContacts.
func buildContactFilter(opts ListOptions) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	if search := strings.TrimSpace(opts.Search); search != "" {
		conditions = append(conditions, `(name LIKE ? OR phone LIKE ? OR email LIKE ?)`)
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if tag := strings.TrimSpace(opts.Tag); tag != "" {
		// Tags are stored as a JSON array of strings; match the quoted
		// element to avoid hitting substrings of other tags.
		conditions = append(conditions, `tags LIKE ?`)
		args = append(args, `%"`+tag+`"%`)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// DeleteContact removes one contact by id.
func (db *ContactsDB) DeleteContact(id string) error {
	res, err := db.conn.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountContacts returns the total number of stored contacts.
func (db *ContactsDB) CountContacts() (int, error) {
	count := 0
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}

// AllTagSets returns the tag list of every contact, for aggregation in
// the dashboard.
func (db *ContactsDB) AllTagSets() ([][]string, error) {
	rows, err := db.conn.Query(`SELECT tags FROM contacts WHERE tags != '[]'`)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	defer rows.Close()

	var sets [][]string
	for rows.Next() {
		var tagsJSON string
		if err := rows.Scan(&tagsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan tags: %w", err)
		}
		tags, err := unmarshalTags(tagsJSON)
		if err != nil {
			return nil, err
		}
		if len(tags) > 0 {
			sets = append(sets, tags)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return sets, nil
}

// SaveBatch records the outcome of one import run.
func (db *ContactsDB) SaveBatch(batch BatchSummary) error {
	_, err := db.conn.Exec(`INSERT INTO import_batches
		(id, filename, total_rows, successful_records, error_rows, duplicate_groups,
		 inserted, skipped_existing, completeness, accuracy, consistency)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		batch.ID, batch.Filename, batch.TotalRows, batch.SuccessfulRecords,
		batch.ErrorRows, batch.DuplicateGroups, batch.Inserted, batch.SkippedExisting,
		batch.Completeness, batch.Accuracy, batch.Consistency)
	if err != nil {
		return fmt.Errorf("failed to save import batch: %w", err)
	}
	return nil
}

// RecentBatches returns the latest import runs, newest first.
func (db *ContactsDB) RecentBatches(limit int) ([]BatchSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.conn.Query(`SELECT id, filename, total_rows, successful_records,
		error_rows, duplicate_groups, inserted, skipped_existing,
		completeness, accuracy, consistency, created_at
		FROM import_batches ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}
	defer rows.Close()

	batches := make([]BatchSummary, 0, limit)
	for rows.Next() {
		var (
			batch     BatchSummary
			createdAt interface{}
		)
		if err := rows.Scan(&batch.ID, &batch.Filename, &batch.TotalRows,
			&batch.SuccessfulRecords, &batch.ErrorRows, &batch.DuplicateGroups,
			&batch.Inserted, &batch.SkippedExisting, &batch.Completeness,
			&batch.Accuracy, &batch.Consistency, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan import batch: %w", err)
		}
		batch.CreatedAt = normalizeTimestampValue(createdAt)
		batches = append(batches, batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate import batches: %w", err)
	}
	return batches, nil
}

// CountBatches returns the number of recorded import batches.
func (db *ContactsDB) CountBatches() (int, error) {
	count := 0
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM import_batches`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count import batches: %w", err)
	}
	return count, nil
}

// Vacuum rebuilds the database file to reclaim space after bulk deletes.
func (db *ContactsDB) Vacuum() error {
	if _, err := db.conn.Exec(`VACUUM`); err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}
	return nil
}

// rowScanner lets scanContact work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row *sql.Row) (*StoredContact, error) {
	return scanContactFrom(row)
}

func scanContactRow(rows *sql.Rows) (*StoredContact, error) {
	return scanContactFrom(rows)
}

func scanContactFrom(scanner rowScanner) (*StoredContact, error) {
	var (
		contact   StoredContact
		email     sql.NullString
		tagsJSON  string
		batchID   sql.NullString
		createdAt interface{}
	)
	err := scanner.Scan(&contact.ID, &contact.Name, &contact.Phone, &email, &tagsJSON, &batchID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}

	contact.Email = nullString(email)
	contact.BatchID = nullString(batchID)
	contact.CreatedAt = normalizeTimestampValue(createdAt)

	tags, err := unmarshalTags(tagsJSON)
	if err != nil {
		return nil, err
	}
	contact.Tags = tags
	return &contact, nil
}

func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func marshalTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	return string(data), nil
}

func unmarshalTags(tagsJSON string) ([]string, error) {
	if tagsJSON == "" || tagsJSON == "[]" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	return tags, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.000Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// normalizeTimestampValue renders whatever the driver returned for a
// timestamp column as RFC3339 UTC.
func normalizeTimestampValue(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.UTC().Format(time.RFC3339)
	case []byte:
		return parseTimestampString(string(v))
	case string:
		return parseTimestampString(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func parseTimestampString(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC().Format(time.RFC3339)
		}
	}
	return raw
}
