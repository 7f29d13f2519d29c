package importer

import (
	"fmt"

	"crmserver/contacts"
	"crmserver/quality"
)

// Pipeline runs the contact import steps in strict order over one
// uploaded file: decode, column inference, row validation, phone
// extraction, duplicate tracking, quality scoring, recommendations,
// report assembly. A Pipeline is stateless between runs and safe for
// concurrent use; all per-run state lives on the stack of Run.
type Pipeline struct {
	patterns FieldPatterns
}

// NewPipeline creates a pipeline with the default header dictionaries.
func NewPipeline() *Pipeline {
	return &Pipeline{patterns: DefaultFieldPatterns()}
}

// NewPipelineWithPatterns creates a pipeline with caller-supplied header
// dictionaries, for deployments with non-standard column naming.
func NewPipelineWithPatterns(patterns FieldPatterns) *Pipeline {
	if patterns == nil {
		patterns = DefaultFieldPatterns()
	}
	return &Pipeline{patterns: patterns}
}

// Run processes one upload and returns its report. The only errors are
// fatal ones raised before row processing: an unsupported format or an
// unreadable file. Row-level problems are reported inside the report,
// never as errors. The whole file is held in memory, so callers should
// cap the accepted upload size.
func (p *Pipeline) Run(filename string, data []byte) (*ImportReport, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	grid, err := Decode(data, format)
	if err != nil {
		return nil, err
	}

	info := FileInfo{
		Name:   filename,
		Size:   int64(len(data)),
		Format: format,
		Rows:   len(grid),
	}

	var headers []string
	if len(grid) > 0 {
		headers = grid[0]
		info.Columns = len(headers)
	}
	mapping := InferColumns(headers, p.patterns)

	var (
		records = make([]contacts.Record, 0, max(0, len(grid)-1))
		issues  = make([]ValidationIssue, 0)
		tracker = newDuplicateTracker()
		stats   = ProcessingStats{TotalRows: max(0, len(grid)-1)}
	)

	for i, row := range dataRows(grid) {
		rowNum := i + 2 // header row is row 1

		check := validateRow(rowNum, row, mapping, &stats)
		issues = append(issues, check.issues...)
		if hasSeverity(check.issues, SeverityWarning) {
			stats.WarningRows++
		}
		if check.fatal {
			stats.ErrorRows++
			continue
		}

		valid, candidates := contacts.ExtractPhones(check.phoneCell)
		stats.PhonesSeen += candidates
		stats.ValidPhones += len(valid)
		stats.InvalidPhones += candidates - len(valid)

		if len(valid) == 0 {
			issues = append(issues, ValidationIssue{
				Row: rowNum, Field: FieldPhone, Value: check.phoneCell,
				Message: msgNoValidPhones, Severity: SeverityError,
			})
			stats.ErrorRows++
			continue
		}
		if len(valid) > 1 {
			stats.MultiNumberRows++
		}

		tags := contacts.ParseTags(check.tagsCell)
		for n, phone := range valid {
			name := check.name
			if n > 0 {
				name = fmt.Sprintf("%s (%d)", check.name, n+1)
			}
			if !tracker.Observe(phone, rowNum) {
				continue
			}
			records = append(records, contacts.Record{
				Name:  name,
				Phone: phone,
				Email: check.email,
				Tags:  tags,
			})
		}
	}

	duplicates := tracker.Groups()
	stats.SuccessfulRecords = len(records)
	stats.DuplicateGroups = len(duplicates)

	metrics := quality.Score(stats.TotalRows, stats.SuccessfulRecords, stats.ErrorRows, tenDigitCount(records))
	recommendations := quality.Recommend(quality.Summary{
		MissingRequiredColumns: mapping.MissingRequired(),
		PhoneErrors:            countFieldErrors(issues, FieldPhone),
		EmailErrors:            countFieldErrors(issues, FieldEmail),
		DuplicateGroups:        len(duplicates),
		Metrics:                metrics,
	})

	return assembleReport(info, mapping, records, issues, duplicates, stats, metrics, recommendations), nil
}

// assembleReport is pure composition; no computation happens here. All
// slices are non-nil so the JSON rendering stays stable.
func assembleReport(
	info FileInfo,
	mapping ColumnMapping,
	records []contacts.Record,
	issues []ValidationIssue,
	duplicates []DuplicateGroup,
	stats ProcessingStats,
	metrics quality.Metrics,
	recommendations []string,
) *ImportReport {
	if duplicates == nil {
		duplicates = make([]DuplicateGroup, 0)
	}
	if recommendations == nil {
		recommendations = make([]string, 0)
	}
	return &ImportReport{
		File:            info,
		Mapping:         mapping,
		Contacts:        records,
		Issues:          issues,
		Duplicates:      duplicates,
		Stats:           stats,
		Quality:         metrics,
		Recommendations: recommendations,
	}
}

// dataRows returns the grid without its header row.
func dataRows(grid [][]string) [][]string {
	if len(grid) <= 1 {
		return nil
	}
	return grid[1:]
}

// hasSeverity reports whether any issue carries the given severity.
func hasSeverity(issues []ValidationIssue, severity Severity) bool {
	for _, issue := range issues {
		if issue.Severity == severity {
			return true
		}
	}
	return false
}

// countFieldErrors counts error-severity issues for one field.
func countFieldErrors(issues []ValidationIssue, field string) int {
	count := 0
	for _, issue := range issues {
		if issue.Field == field && issue.Severity == SeverityError {
			count++
		}
	}
	return count
}

// tenDigitCount counts records whose phone is exactly 10 digits. By
// construction of the normalizer this is all of them; the consistency
// metric keeps the counter honest anyway.
func tenDigitCount(records []contacts.Record) int {
	count := 0
	for _, r := range records {
		if len(r.Phone) == 10 {
			count++
		}
	}
	return count
}
