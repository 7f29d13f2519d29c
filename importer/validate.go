package importer

import (
	"strings"
	"unicode/utf8"

	"crmserver/contacts"
)

// Row-scoped validation messages. These appear verbatim in reports and
// exports, so they are constants rather than inline literals.
const (
	msgNameRequired  = "Name is required"
	msgNameTooShort  = "Name is too short"
	msgPhoneRequired = "Phone number is required"
	msgEmailInvalid  = "Invalid email format"
	msgNoValidPhones = "No valid phone numbers found"
)

// rowCheck is the validator's verdict for one data row, plus the raw
// field values pulled out of the row for the later pipeline steps.
type rowCheck struct {
	issues    []ValidationIssue
	fatal     bool
	name      string
	phoneCell string
	email     string
	tagsCell  string
}

// validateRow applies the required-field and format checks to one data
// row, in order: name presence, name length, phone cell presence, email
// format. Any error-severity issue makes the row fatal (no records);
// warnings do not. Email presence statistics are tallied for every row,
// including rows that fail an earlier check.
func validateRow(rowNum int, row []string, mapping ColumnMapping, stats *ProcessingStats) rowCheck {
	check := rowCheck{
		name:      cellAt(row, mapping.Index(FieldName)),
		phoneCell: cellAt(row, mapping.Index(FieldPhone)),
		email:     cellAt(row, mapping.Index(FieldEmail)),
		tagsCell:  cellAt(row, mapping.Index(FieldTags)),
	}

	if check.name == "" {
		check.issues = append(check.issues, ValidationIssue{
			Row: rowNum, Field: FieldName, Message: msgNameRequired, Severity: SeverityError,
		})
	} else if utf8.RuneCountInString(check.name) < contacts.MinNameLength {
		check.issues = append(check.issues, ValidationIssue{
			Row: rowNum, Field: FieldName, Value: check.name, Message: msgNameTooShort, Severity: SeverityWarning,
		})
	}

	if check.phoneCell == "" {
		check.issues = append(check.issues, ValidationIssue{
			Row: rowNum, Field: FieldPhone, Message: msgPhoneRequired, Severity: SeverityError,
		})
	}

	switch {
	case check.email == "":
		stats.EmailsMissing++
	case contacts.IsValidEmail(check.email):
		stats.EmailsTotal++
		stats.EmailsValid++
	default:
		stats.EmailsTotal++
		stats.EmailsInvalid++
		check.issues = append(check.issues, ValidationIssue{
			Row: rowNum, Field: FieldEmail, Value: check.email, Message: msgEmailInvalid, Severity: SeverityError,
		})
	}

	for _, issue := range check.issues {
		if issue.Severity == SeverityError {
			check.fatal = true
			break
		}
	}
	return check
}

// cellAt returns the trimmed cell at idx, or "" when the row is too
// short or the column is unmapped.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
