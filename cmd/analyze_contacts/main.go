package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"crmserver/importer"
)

func main() {
	var (
		filePath   = flag.String("file", "", "Path to the contacts file (.csv or .xlsx)")
		issuesPath = flag.String("issues", "", "Write the found issues to this CSV file")
		verbose    = flag.Bool("verbose", false, "Print every issue instead of the first 10")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Usage: analyze_contacts -file <path_to_file> [-issues <out.csv>] [-verbose]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read file %s: %v", *filePath, err)
	}

	report, err := importer.NewPipeline().Run(*filePath, data)
	if err != nil {
		log.Fatalf("Failed to analyze file: %v", err)
	}

	fmt.Printf("\n=== File ===\n")
	fmt.Printf("Name: %s\n", report.File.Name)
	fmt.Printf("Format: %s\n", report.File.Format)
	fmt.Printf("Rows: %d (including header)\n", report.File.Rows)
	fmt.Printf("Columns: %d\n", report.File.Columns)

	fmt.Printf("\n=== Column Mapping ===\n")
	for _, field := range []string{importer.FieldName, importer.FieldPhone, importer.FieldEmail, importer.FieldTags} {
		match, ok := report.Mapping.Columns[field]
		if !ok {
			fmt.Printf("  %-6s -> (not found)\n", field)
			continue
		}
		fmt.Printf("  %-6s -> column %d (%q)\n", field, match.Index+1, match.Header)
	}

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Importable records: %d\n", report.Stats.SuccessfulRecords)
	fmt.Printf("Rows with errors: %d\n", report.Stats.ErrorRows)
	fmt.Printf("Rows with warnings: %d\n", report.Stats.WarningRows)
	fmt.Printf("Duplicate groups: %d\n", report.Stats.DuplicateGroups)
	fmt.Printf("Valid phones: %d of %d\n", report.Stats.ValidPhones, report.Stats.PhonesSeen)
	if report.Stats.MultiNumberRows > 0 {
		fmt.Printf("Rows with several numbers in one cell: %d\n", report.Stats.MultiNumberRows)
	}

	fmt.Printf("\n=== Quality ===\n")
	fmt.Printf("Completeness: %.1f%%\n", report.Quality.Completeness)
	fmt.Printf("Accuracy: %.1f%%\n", report.Quality.Accuracy)
	fmt.Printf("Consistency: %.1f%%\n", report.Quality.Consistency)

	if len(report.Issues) > 0 {
		fmt.Printf("\n=== Issues (%d) ===\n", len(report.Issues))
		shown := len(report.Issues)
		if !*verbose && shown > 10 {
			shown = 10
		}
		for _, issue := range report.Issues[:shown] {
			fmt.Printf("  row %d [%s] %s: %s\n", issue.Row, issue.Severity, issue.Field, issue.Message)
		}
		if shown < len(report.Issues) {
			fmt.Printf("  ... and %d more (use -verbose to see all)\n", len(report.Issues)-shown)
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Printf("\n=== Recommendations ===\n")
		for _, rec := range report.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	if *issuesPath != "" {
		if err := os.WriteFile(*issuesPath, importer.IssuesCSV(report.Issues), 0644); err != nil {
			log.Fatalf("Failed to write issues file: %v", err)
		}
		fmt.Printf("\nIssues written to %s\n", *issuesPath)
	}

	if report.Stats.ErrorRows > 0 {
		os.Exit(1)
	}
}
