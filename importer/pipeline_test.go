package importer

import (
	"errors"
	"reflect"
	"testing"
)

// sampleUpload is a small but representative file: one clean row, one
// duplicate via the +91 prefix, one row without a name and one row whose
// phone is too short to normalize.
const sampleUpload = `Name,Phone,Email,Tags
Rajesh Kumar,9876543210,rajesh@example.com,personal-loan
Priya Sharma,+91-9876543210,priya@example.com,business-loan
,9123456780,,
Amit Patel,123456789,amit@example.com,home-loan
`

func TestPipelineEndToEnd(t *testing.T) {
	report, err := NewPipeline().Run("contacts.csv", []byte(sampleUpload))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(report.Contacts) != 1 {
		t.Fatalf("Run() produced %d contacts, want 1: %+v", len(report.Contacts), report.Contacts)
	}
	contact := report.Contacts[0]
	if contact.Name != "Rajesh Kumar" || contact.Phone != "9876543210" {
		t.Errorf("contact = %+v, want Rajesh Kumar / 9876543210", contact)
	}
	if contact.Email != "rajesh@example.com" {
		t.Errorf("contact email = %q, want rajesh@example.com", contact.Email)
	}
	if !reflect.DeepEqual(contact.Tags, []string{"personal-loan"}) {
		t.Errorf("contact tags = %v, want [personal-loan]", contact.Tags)
	}

	if len(report.Duplicates) != 1 {
		t.Fatalf("Run() found %d duplicate groups, want 1: %+v", len(report.Duplicates), report.Duplicates)
	}
	group := report.Duplicates[0]
	if group.Phone != "9876543210" {
		t.Errorf("duplicate phone = %q, want 9876543210", group.Phone)
	}
	if !reflect.DeepEqual(group.Rows, []int{2, 3}) {
		t.Errorf("duplicate rows = %v, want [2 3]", group.Rows)
	}
	if group.Resolution != "kept first occurrence" {
		t.Errorf("duplicate resolution = %q, want kept first occurrence", group.Resolution)
	}

	stats := report.Stats
	if stats.TotalRows != 4 {
		t.Errorf("TotalRows = %d, want 4", stats.TotalRows)
	}
	if stats.SuccessfulRecords != 1 {
		t.Errorf("SuccessfulRecords = %d, want 1", stats.SuccessfulRecords)
	}
	if stats.DuplicateGroups != 1 {
		t.Errorf("DuplicateGroups = %d, want 1", stats.DuplicateGroups)
	}
	if stats.ErrorRows != 2 {
		t.Errorf("ErrorRows = %d, want 2", stats.ErrorRows)
	}

	// Row 4 lost its name, row 5 had no normalizable number.
	wantIssues := []ValidationIssue{
		{Row: 4, Field: FieldName, Message: "Name is required", Severity: SeverityError},
		{Row: 5, Field: FieldPhone, Value: "123456789", Message: "No valid phone numbers found", Severity: SeverityError},
	}
	if !reflect.DeepEqual(report.Issues, wantIssues) {
		t.Errorf("Issues = %+v, want %+v", report.Issues, wantIssues)
	}

	if report.Quality.Completeness != 25 {
		t.Errorf("Completeness = %v, want 25", report.Quality.Completeness)
	}
	if report.Quality.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", report.Quality.Accuracy)
	}
	if report.Quality.Consistency != 100 {
		t.Errorf("Consistency = %v, want 100", report.Quality.Consistency)
	}

	if report.File.Rows != 5 || report.File.Columns != 4 {
		t.Errorf("File dims = %d x %d, want 5 x 4", report.File.Rows, report.File.Columns)
	}
	if report.File.Format != FormatCSV {
		t.Errorf("File format = %q, want csv", report.File.Format)
	}
}

func TestPipelineIdempotent(t *testing.T) {
	pipeline := NewPipeline()

	first, err := pipeline.Run("contacts.csv", []byte(sampleUpload))
	if err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}
	second, err := pipeline.Run("contacts.csv", []byte(sampleUpload))
	if err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Run() is not deterministic: two runs over identical bytes differ")
	}
}

func TestPipelineMultiNumberCell(t *testing.T) {
	data := []byte("Name,Phone\nAsha,\"9876543210,9876543211\"\n")

	report, err := NewPipeline().Run("contacts.csv", data)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(report.Contacts) != 2 {
		t.Fatalf("Run() produced %d contacts, want 2: %+v", len(report.Contacts), report.Contacts)
	}
	if report.Contacts[0].Name != "Asha" || report.Contacts[0].Phone != "9876543210" {
		t.Errorf("first contact = %+v, want Asha / 9876543210", report.Contacts[0])
	}
	if report.Contacts[1].Name != "Asha (2)" || report.Contacts[1].Phone != "9876543211" {
		t.Errorf("second contact = %+v, want Asha (2) / 9876543211", report.Contacts[1])
	}
	if report.Stats.MultiNumberRows != 1 {
		t.Errorf("MultiNumberRows = %d, want 1", report.Stats.MultiNumberRows)
	}
	if report.Stats.SuccessfulRecords != 2 {
		t.Errorf("SuccessfulRecords = %d, want 2", report.Stats.SuccessfulRecords)
	}
}

func TestPipelineDuplicateAcrossRows(t *testing.T) {
	data := []byte("Name,Phone\nFirst,9876543210\nSecond,+91-9876543210\n")

	report, err := NewPipeline().Run("contacts.csv", data)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(report.Contacts) != 1 {
		t.Fatalf("Run() produced %d contacts, want 1", len(report.Contacts))
	}
	if report.Contacts[0].Name != "First" {
		t.Errorf("kept contact = %q, want the first occurrence", report.Contacts[0].Name)
	}
	if len(report.Duplicates) != 1 {
		t.Fatalf("duplicate groups = %d, want 1", len(report.Duplicates))
	}
	if !reflect.DeepEqual(report.Duplicates[0].Rows, []int{2, 3}) {
		t.Errorf("duplicate rows = %v, want [2 3]", report.Duplicates[0].Rows)
	}
}

func TestPipelineMissingPhoneColumn(t *testing.T) {
	data := []byte("Name,Email\nRajesh,rajesh@example.com\nPriya,priya@example.com\n")

	report, err := NewPipeline().Run("contacts.csv", data)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	found := false
	for _, field := range report.Mapping.Missing {
		if field == FieldPhone {
			found = true
		}
	}
	if !found {
		t.Errorf("Mapping.Missing = %v, want to contain phone", report.Mapping.Missing)
	}

	if len(report.Contacts) != 0 {
		t.Errorf("contacts = %+v, want none without a phone column", report.Contacts)
	}
	if report.Stats.ErrorRows != 2 {
		t.Errorf("ErrorRows = %d, want 2", report.Stats.ErrorRows)
	}
	for _, issue := range report.Issues {
		if issue.Field == FieldPhone && issue.Message != "Phone number is required" {
			t.Errorf("phone issue message = %q, want Phone number is required", issue.Message)
		}
	}
}

func TestPipelineAllSuccess(t *testing.T) {
	data := []byte("Name,Phone,Email\nRajesh,9876543210,rajesh@example.com\nPriya,9123456780,priya@example.com\n")

	report, err := NewPipeline().Run("contacts.csv", data)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	q := report.Quality
	if q.Completeness != 100 || q.Accuracy != 100 || q.Consistency != 100 {
		t.Errorf("Quality = %+v, want 100 across the board", q)
	}
	if len(report.Recommendations) != 1 {
		t.Errorf("Recommendations = %v, want single positive message", report.Recommendations)
	}
}

func TestPipelineShortNameWarning(t *testing.T) {
	data := []byte("Name,Phone\nA,9876543210\n")

	report, err := NewPipeline().Run("contacts.csv", data)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// The warning is recorded but the record is still produced.
	if len(report.Contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(report.Contacts))
	}
	if report.Stats.WarningRows != 1 {
		t.Errorf("WarningRows = %d, want 1", report.Stats.WarningRows)
	}
	if report.Stats.ErrorRows != 0 {
		t.Errorf("ErrorRows = %d, want 0", report.Stats.ErrorRows)
	}
	if len(report.Issues) != 1 || report.Issues[0].Severity != SeverityWarning {
		t.Errorf("Issues = %+v, want one warning", report.Issues)
	}
}

func TestPipelineInvalidEmailIsRowFatal(t *testing.T) {
	data := []byte("Name,Phone,Email\nBob Kumar,9876543210,not-an-email\n")

	report, err := NewPipeline().Run("contacts.csv", data)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(report.Contacts) != 0 {
		t.Errorf("contacts = %+v, want none (email failure is row-fatal)", report.Contacts)
	}
	if report.Stats.ErrorRows != 1 {
		t.Errorf("ErrorRows = %d, want 1", report.Stats.ErrorRows)
	}
	// The phone was never extracted: validation killed the row first.
	if report.Stats.PhonesSeen != 0 {
		t.Errorf("PhonesSeen = %d, want 0", report.Stats.PhonesSeen)
	}
	if report.Stats.EmailsInvalid != 1 {
		t.Errorf("EmailsInvalid = %d, want 1", report.Stats.EmailsInvalid)
	}
}

func TestPipelineEmailStats(t *testing.T) {
	report, err := NewPipeline().Run("contacts.csv", []byte(sampleUpload))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	stats := report.Stats
	if stats.EmailsValid != 3 {
		t.Errorf("EmailsValid = %d, want 3", stats.EmailsValid)
	}
	if stats.EmailsMissing != 1 {
		t.Errorf("EmailsMissing = %d, want 1", stats.EmailsMissing)
	}
	if stats.EmailsInvalid != 0 {
		t.Errorf("EmailsInvalid = %d, want 0", stats.EmailsInvalid)
	}
	if stats.EmailsTotal != 3 {
		t.Errorf("EmailsTotal = %d, want 3", stats.EmailsTotal)
	}
}

func TestPipelinePhoneTokenStats(t *testing.T) {
	report, err := NewPipeline().Run("contacts.csv", []byte(sampleUpload))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	stats := report.Stats
	// Rows 2, 3 and 5 reach extraction (row 4 dies on the missing name).
	if stats.PhonesSeen != 3 {
		t.Errorf("PhonesSeen = %d, want 3", stats.PhonesSeen)
	}
	if stats.ValidPhones != 2 {
		t.Errorf("ValidPhones = %d, want 2", stats.ValidPhones)
	}
	if stats.InvalidPhones != 1 {
		t.Errorf("InvalidPhones = %d, want 1", stats.InvalidPhones)
	}
}

func TestPipelineUnsupportedFormat(t *testing.T) {
	report, err := NewPipeline().Run("contacts.txt", []byte("Name,Phone\nA,9876543210\n"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Run() error = %v, want ErrUnsupportedFormat", err)
	}
	if report != nil {
		t.Errorf("Run() report = %+v, want nil on fatal error", report)
	}
}

func TestPipelineHeaderOnlyFile(t *testing.T) {
	report, err := NewPipeline().Run("contacts.csv", []byte("Name,Phone,Email,Tags\n"))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if report.Stats.TotalRows != 0 {
		t.Errorf("TotalRows = %d, want 0", report.Stats.TotalRows)
	}
	if report.Quality != (ImportReport{}).Quality {
		t.Errorf("Quality = %+v, want zero metrics for an empty batch", report.Quality)
	}
	if len(report.Contacts) != 0 || len(report.Issues) != 0 {
		t.Errorf("report not empty: contacts=%v issues=%v", report.Contacts, report.Issues)
	}
}

func TestPipelineRepeatedNumberInOneCell(t *testing.T) {
	data := []byte("Name,Phone\nAsha,\"9876543210,9876543210\"\n")

	report, err := NewPipeline().Run("contacts.csv", data)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(report.Contacts) != 1 {
		t.Fatalf("contacts = %d, want 1 (second occurrence deduplicated)", len(report.Contacts))
	}
	if len(report.Duplicates) != 1 {
		t.Fatalf("duplicate groups = %d, want 1", len(report.Duplicates))
	}
	if !reflect.DeepEqual(report.Duplicates[0].Rows, []int{2, 2}) {
		t.Errorf("duplicate rows = %v, want [2 2] (both occurrences on row 2)", report.Duplicates[0].Rows)
	}
}
