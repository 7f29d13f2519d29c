package services

import (
	"context"
	"errors"
	"fmt"

	"crmserver/contacts"
	"crmserver/database"
	"crmserver/importer"
	apperrors "crmserver/server/errors"
	"crmserver/server/middleware"

	"github.com/google/uuid"
)

// ImportStore is the slice of the contact store the import service
// writes to.
type ImportStore interface {
	InsertContacts(batchID string, records []contacts.Record) (int, error)
	SaveBatch(batch database.BatchSummary) error
}

// ImportService runs uploaded contact files through the import pipeline
// and persists the surviving records together with a batch summary.
type ImportService struct {
	store  ImportStore
	runner *importer.Pipeline
	logger LoggerInterface
}

// NewImportService creates an import service over the given store.
func NewImportService(store ImportStore) *ImportService {
	return &ImportService{
		store:  store,
		runner: importer.NewPipeline(),
		logger: newDefaultLogger(),
	}
}

// NewImportServiceWithLogger creates an import service with a custom
// logger, used by tests.
func NewImportServiceWithLogger(store ImportStore, logger LoggerInterface) *ImportService {
	service := NewImportService(store)
	if logger != nil {
		service.logger = logger
	}
	return service
}

// ImportResult is the outcome of a persisted import: the full pipeline
// report plus what actually changed in the store.
type ImportResult struct {
	BatchID         string                 `json:"batch_id"`
	Inserted        int                    `json:"inserted"`
	SkippedExisting int                    `json:"skipped_existing"`
	Report          *importer.ImportReport `json:"report"`
}

// Validate runs the pipeline over one upload without touching the
// store. The report carries all row-level findings; only unreadable or
// unsupported files produce an error.
func (s *ImportService) Validate(ctx context.Context, filename string, data []byte) (*importer.ImportReport, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("uploaded file is empty", nil)
	}

	report, err := s.runner.Run(filename, data)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			return nil, apperrors.NewValidationError("unsupported file format, expected .csv or .xlsx", err)
		}
		s.logger.Warn("Upload could not be processed", "filename", filename, "error", err)
		return nil, apperrors.NewFileProcessingError("could not read the uploaded file", err)
	}
	return report, nil
}

// Import validates an upload and persists its records. Contacts whose
// phone number already exists in the store are skipped, not updated,
// and counted in SkippedExisting.
func (s *ImportService) Import(ctx context.Context, filename string, data []byte) (*ImportResult, error) {
	report, err := s.Validate(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	for i := range report.Contacts {
		report.Contacts[i].ID = uuid.New().String()
	}

	inserted, err := s.store.InsertContacts(batchID, report.Contacts)
	if err != nil {
		s.logger.Error("Failed to persist imported contacts", "batch_id", batchID, "error", err)
		return nil, apperrors.NewDatabaseError("save imported contacts", err)
	}
	skipped := len(report.Contacts) - inserted

	batch := database.BatchSummary{
		ID:                batchID,
		Filename:          report.File.Name,
		TotalRows:         report.Stats.TotalRows,
		SuccessfulRecords: report.Stats.SuccessfulRecords,
		ErrorRows:         report.Stats.ErrorRows,
		DuplicateGroups:   report.Stats.DuplicateGroups,
		Inserted:          inserted,
		SkippedExisting:   skipped,
		Completeness:      report.Quality.Completeness,
		Accuracy:          report.Quality.Accuracy,
		Consistency:       report.Quality.Consistency,
	}
	if err := s.store.SaveBatch(batch); err != nil {
		s.logger.Error("Failed to record import batch", "batch_id", batchID, "error", err)
		return nil, apperrors.NewDatabaseError("record import batch", err)
	}

	s.logger.Info("Import completed",
		"batch_id", batchID,
		"filename", report.File.Name,
		"records", report.Stats.SuccessfulRecords,
		"inserted", inserted,
		"skipped_existing", skipped,
		"request_id", middleware.GetRequestID(ctx))

	return &ImportResult{
		BatchID:         batchID,
		Inserted:        inserted,
		SkippedExisting: skipped,
		Report:          report,
	}, nil
}

// ExportIssues validates an upload and renders its validation issues as
// a downloadable file. Supported formats are "csv" and "xlsx"; the
// second return value is the suggested download filename.
func (s *ImportService) ExportIssues(ctx context.Context, filename string, data []byte, format string) ([]byte, string, error) {
	report, err := s.Validate(ctx, filename, data)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "", "csv":
		return importer.IssuesCSV(report.Issues), "validation_issues.csv", nil
	case "xlsx":
		content, err := importer.IssuesXLSX(report.Issues)
		if err != nil {
			s.logger.Error("Failed to render issues workbook", "filename", filename, "error", err)
			return nil, "", apperrors.NewInternalError("failed to render issues export", err)
		}
		return content, "validation_issues.xlsx", nil
	default:
		return nil, "", apperrors.NewValidationError(fmt.Sprintf("unsupported export format %q, expected csv or xlsx", format), nil)
	}
}
