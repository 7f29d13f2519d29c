package services

import (
	"context"
	"errors"
	"strings"

	"crmserver/contacts"
	"crmserver/database"
	apperrors "crmserver/server/errors"

	"github.com/google/uuid"
)

// ContactStore is the slice of the contact store the contact service
// reads and writes.
type ContactStore interface {
	GetContact(id string) (*database.StoredContact, error)
	ListContacts(opts database.ListOptions) ([]database.StoredContact, int, error)
	CreateContact(record contacts.Record, batchID string) error
	DeleteContact(id string) error
}

// Listing page bounds. The store applies the same bounds; they are
// repeated here so the limit echoed in responses matches what ran.
const (
	defaultContactPageSize = 50
	maxContactPageSize     = 200
)

// ContactService exposes contact CRUD over the store, applying the same
// field rules to manually created contacts that the import pipeline
// applies to uploaded ones.
type ContactService struct {
	store  ContactStore
	logger LoggerInterface
}

// NewContactService creates a contact service over the given store.
func NewContactService(store ContactStore) *ContactService {
	return &ContactService{
		store:  store,
		logger: newDefaultLogger(),
	}
}

// NewContactServiceWithLogger creates a contact service with a custom
// logger, used by tests.
func NewContactServiceWithLogger(store ContactStore, logger LoggerInterface) *ContactService {
	service := NewContactService(store)
	if logger != nil {
		service.logger = logger
	}
	return service
}

// CreateContactInput is the payload for creating one contact by hand.
type CreateContactInput struct {
	Name  string   `json:"name"`
	Phone string   `json:"phone"`
	Email string   `json:"email"`
	Tags  []string `json:"tags"`
}

// ContactPage is one page of a contact listing.
type ContactPage struct {
	Contacts []database.StoredContact `json:"contacts"`
	Total    int                      `json:"total"`
	Limit    int                      `json:"limit"`
	Offset   int                      `json:"offset"`
}

// ContactListParams filters and pages List.
type ContactListParams struct {
	Search string
	Tag    string
	Limit  int
	Offset int
}

// Create validates the input, standardizes the phone number and stores
// the contact. The stored record is returned with its assigned id.
func (s *ContactService) Create(ctx context.Context, input CreateContactInput) (*database.StoredContact, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}

	phone := contacts.NormalizePhone(input.Phone)
	if !contacts.IsValidMobile(phone) {
		return nil, apperrors.NewValidationError("phone must be a valid 10-digit Indian mobile number", nil)
	}

	email := strings.TrimSpace(input.Email)
	if email != "" && !contacts.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email format", nil)
	}

	// Route the tags through the same cleaning the importer applies to
	// a tags cell: trim, drop empties, cap count and length.
	tags := contacts.ParseTags(strings.Join(input.Tags, ","))

	record := contacts.Record{
		ID:    uuid.New().String(),
		Name:  name,
		Phone: phone,
		Email: email,
		Tags:  tags,
	}

	if err := s.store.CreateContact(record, ""); err != nil {
		if errors.Is(err, database.ErrDuplicatePhone) {
			return nil, apperrors.NewConflictError("a contact with this phone number already exists", err)
		}
		s.logger.Error("Failed to create contact", "phone", phone, "error", err)
		return nil, apperrors.NewDatabaseError("create contact", err)
	}

	created, err := s.store.GetContact(record.ID)
	if err != nil {
		s.logger.Error("Failed to load created contact", "id", record.ID, "error", err)
		return nil, apperrors.NewDatabaseError("load created contact", err)
	}
	return created, nil
}

// Get loads one contact by id.
func (s *ContactService) Get(ctx context.Context, id string) (*database.StoredContact, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("contact id is required", nil)
	}

	contact, err := s.store.GetContact(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("contact not found", err)
		}
		s.logger.Error("Failed to load contact", "id", id, "error", err)
		return nil, apperrors.NewDatabaseError("load contact", err)
	}
	return contact, nil
}

// List returns one page of contacts matching the given filters.
func (s *ContactService) List(ctx context.Context, params ContactListParams) (*ContactPage, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultContactPageSize
	}
	if limit > maxContactPageSize {
		limit = maxContactPageSize
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.store.ListContacts(database.ListOptions{
		Search: strings.TrimSpace(params.Search),
		Tag:    strings.TrimSpace(params.Tag),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.logger.Error("Failed to list contacts", "error", err)
		return nil, apperrors.NewDatabaseError("list contacts", err)
	}
	if items == nil {
		items = make([]database.StoredContact, 0)
	}

	return &ContactPage{
		Contacts: items,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// Delete removes one contact by id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := ValidateContext(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("contact id is required", nil)
	}

	if err := s.store.DeleteContact(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return apperrors.NewNotFoundError("contact not found", err)
		}
		s.logger.Error("Failed to delete contact", "id", id, "error", err)
		return apperrors.NewDatabaseError("delete contact", err)
	}

	s.logger.Info("Contact deleted", "id", id)
	return nil
}
