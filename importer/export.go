package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// templateHeader and templateRows make up the sample file offered to
// users before their first import. The examples intentionally include a
// multi-number cell and a malformed row so users see how those are
// handled.
var (
	templateHeader = []string{"Name", "Phone", "Email", "Tags"}

	templateRows = [][]string{
		{"Rajesh Kumar", "9876543210", "rajesh@example.com", "personal-loan"},
		{"Priya Sharma", "+91-9123456789", "priya@example.com", "business-loan"},
		{"Amit Patel", "9988776655,9871234560", "amit@example.com", "home-loan"},
		{"Sunita Devi", "09812345678", "", "gold-loan"},
		{"Bad Example", "12345", "not-an-email", "check-format"},
	}
)

// issuesHeader is the column layout of the validation report export.
var issuesHeader = []string{"Row", "Field", "Value", "Error", "Severity"}

// TemplateCSV renders the sample import file.
func TemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(templateHeader)
	for _, row := range templateRows {
		w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}

// IssuesCSV serializes validation issues for offline review.
func IssuesCSV(issues []ValidationIssue) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(issuesHeader)
	for _, issue := range issues {
		w.Write([]string{
			strconv.Itoa(issue.Row),
			issue.Field,
			issue.Value,
			issue.Message,
			string(issue.Severity),
		})
	}
	w.Flush()
	return buf.Bytes()
}

// IssuesXLSX serializes validation issues as a single-sheet workbook for
// users who review in a spreadsheet.
func IssuesXLSX(issues []ValidationIssue) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for col, title := range issuesHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, issue := range issues {
		values := []interface{}{issue.Row, issue.Field, issue.Value, issue.Message, string(issue.Severity)}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
