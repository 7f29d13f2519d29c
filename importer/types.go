package importer

import (
	"crmserver/contacts"
	"crmserver/quality"
)

// Severity classifies a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Semantic field names used by column inference and validation issues.
const (
	FieldName  = "name"
	FieldPhone = "phone"
	FieldEmail = "email"
	FieldTags  = "tags"
)

// fieldOrder fixes the iteration order over semantic fields so mappings,
// missing lists and reports stay deterministic.
var fieldOrder = []string{FieldName, FieldPhone, FieldEmail, FieldTags}

// requiredFields are the fields an import cannot work without.
var requiredFields = []string{FieldName, FieldPhone}

// Format identifies a supported upload format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ValidationIssue describes one problem found in one input row. Row
// numbers are 1-based counting the header row, so the first data row is
// row 2.
type ValidationIssue struct {
	Row      int      `json:"row"`
	Field    string   `json:"field"`
	Value    string   `json:"value"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// resolutionKeptFirst is the only duplicate resolution currently applied.
const resolutionKeptFirst = "kept first occurrence"

// DuplicateGroup lists every row that produced the same standardized
// phone number within one batch. Rows appear in input order; the first
// one kept the record.
type DuplicateGroup struct {
	Phone      string `json:"phone"`
	Rows       []int  `json:"rows"`
	Resolution string `json:"resolution"`
}

// ProcessingStats aggregates counters over one pipeline run.
type ProcessingStats struct {
	TotalRows         int `json:"total_rows"`
	SuccessfulRecords int `json:"successful_records"`
	ErrorRows         int `json:"error_rows"`
	WarningRows       int `json:"warning_rows"`
	DuplicateGroups   int `json:"duplicate_groups"`
	PhonesSeen        int `json:"phones_seen"`
	ValidPhones       int `json:"valid_phones"`
	InvalidPhones     int `json:"invalid_phones"`
	MultiNumberRows   int `json:"multi_number_rows"`
	EmailsTotal       int `json:"emails_total"`
	EmailsValid       int `json:"emails_valid"`
	EmailsInvalid     int `json:"emails_invalid"`
	EmailsMissing     int `json:"emails_missing"`
}

// FileInfo carries caller-declared upload metadata plus the decoded grid
// dimensions. Rows counts grid rows including the header; Columns is the
// header cell count.
type FileInfo struct {
	Name    string `json:"name"`
	Size    int64  `json:"size_bytes"`
	Format  Format `json:"format"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// ImportReport is the complete result of one pipeline run. It is built
// once at the end of the run and never mutated afterwards.
type ImportReport struct {
	File            FileInfo          `json:"file"`
	Mapping         ColumnMapping     `json:"mapping"`
	Contacts        []contacts.Record `json:"contacts"`
	Issues          []ValidationIssue `json:"issues"`
	Duplicates      []DuplicateGroup  `json:"duplicates"`
	Stats           ProcessingStats   `json:"stats"`
	Quality         quality.Metrics   `json:"quality"`
	Recommendations []string          `json:"recommendations"`
}
