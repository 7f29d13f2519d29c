package importer

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnsupportedFormat is returned for uploads that are neither CSV nor
// XLSX. It aborts the run before any row is processed.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// utf8BOM is stripped from CSV uploads produced by spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormat maps a filename extension to a supported upload format.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Decode turns an upload into a grid of cell strings. Row 0 holds the
// headers; rows may have differing lengths and missing cells are treated
// as empty by the callers. Blank rows are dropped.
func Decode(data []byte, format Format) ([][]string, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(data)
	case FormatXLSX:
		return decodeXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// decodeCSV splits CSV text into rows and quote-aware fields. Lines that
// are empty after trimming are dropped.
func decodeCSV(data []byte) ([][]string, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		grid = append(grid, splitCSVLine(line))
	}
	return grid, nil
}

// splitCSVLine splits one line on commas, honoring double quotes: a
// quote character toggles the in-quotes state and is consumed; commas
// inside quotes belong to the field.
func splitCSVLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// decodeText returns the upload as UTF-8 text. Files from older Windows
// exports are not valid UTF-8; those are re-decoded as Windows-1252.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode text encoding: %w", err)
	}
	return string(decoded), nil
}

// decodeXLSX converts the first sheet of a workbook to an array of rows.
// Fully blank rows are dropped; ragged rows are kept as-is.
func decodeXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// isEmptyRow reports whether every cell is empty after trimming.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
