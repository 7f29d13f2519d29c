package main

import (
	"archive/zip"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crmserver/database"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "stats":
		handleStats()
	case "backup":
		handleBackup()
	case "vacuum":
		handleVacuum()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Database Manager - CLI utility for the contacts database")
	fmt.Println()
	fmt.Println("Usage: db-manager <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  stats [--db=path]                  Show contact and import batch counts")
	fmt.Println("  backup [--db=path] [--output=path] Create a zip backup of the database")
	fmt.Println("  vacuum [--db=path]                 Rebuild the database file to reclaim space")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  db-manager stats")
	fmt.Println("  db-manager backup --output=contacts_backup.zip")
	fmt.Println("  db-manager vacuum --db=data/contacts.db")
}

func handleStats() {
	statsFlag := flag.NewFlagSet("stats", flag.ExitOnError)
	dbPath := statsFlag.String("db", "data/contacts.db", "Path to the contacts database")
	statsFlag.Parse(os.Args[2:])

	info, err := os.Stat(*dbPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Database not found: %s", *dbPath)
		}
		log.Fatalf("Error checking database %s: %v", *dbPath, err)
	}

	db, err := database.NewContactsDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	contactCount, err := db.CountContacts()
	if err != nil {
		log.Fatalf("Failed to count contacts: %v", err)
	}
	batchCount, err := db.CountBatches()
	if err != nil {
		log.Fatalf("Failed to count import batches: %v", err)
	}

	fmt.Printf("\n=== Contacts Database ===\n")
	fmt.Printf("Path: %s\n", *dbPath)
	fmt.Printf("Size: %s\n", humanSize(info.Size()))
	fmt.Printf("Contacts: %d\n", contactCount)
	fmt.Printf("Import batches: %d\n", batchCount)

	batches, err := db.RecentBatches(5)
	if err != nil {
		log.Fatalf("Failed to list recent batches: %v", err)
	}
	if len(batches) > 0 {
		fmt.Printf("\nRecent imports:\n")
		for _, batch := range batches {
			fmt.Printf("  %s  %s  inserted=%d skipped=%d errors=%d\n",
				batch.CreatedAt, batch.Filename, batch.Inserted, batch.SkippedExisting, batch.ErrorRows)
		}
	}
}

func handleBackup() {
	backupFlag := flag.NewFlagSet("backup", flag.ExitOnError)
	dbPath := backupFlag.String("db", "data/contacts.db", "Path to the contacts database")
	outputPath := backupFlag.String("output", "", "Output path for the backup file")
	backupFlag.Parse(os.Args[2:])

	target := *outputPath
	if target == "" {
		backupDir := "data/backups"
		if err := os.MkdirAll(backupDir, 0755); err != nil {
			log.Fatalf("Failed to create backup directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		target = filepath.Join(backupDir, fmt.Sprintf("contacts_%s.zip", timestamp))
	}
	if !strings.HasSuffix(target, ".zip") {
		target += ".zip"
	}

	size, err := backupDatabase(*dbPath, target)
	if err != nil {
		log.Fatalf("Backup failed: %v", err)
	}

	fmt.Printf("Backup created successfully: %s\n", target)
	fmt.Printf("Archived %s\n", humanSize(size))
}

// backupDatabase zips the database file into outPath and returns the
// uncompressed size. Run it while the server is stopped; the copy is
// not consistent against concurrent writes.
func backupDatabase(dbPath, outPath string) (int64, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("database not found: %s", dbPath)
		}
		return 0, fmt.Errorf("failed to check database %s: %w", dbPath, err)
	}

	source, err := os.Open(dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer source.Close()

	zipFile, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	entry, err := zipWriter.Create(filepath.Base(dbPath))
	if err != nil {
		zipWriter.Close()
		return 0, fmt.Errorf("failed to create archive entry: %w", err)
	}
	if _, err := io.Copy(entry, source); err != nil {
		zipWriter.Close()
		return 0, fmt.Errorf("failed to copy database into archive: %w", err)
	}
	if err := zipWriter.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish archive: %w", err)
	}

	return info.Size(), nil
}

func handleVacuum() {
	vacuumFlag := flag.NewFlagSet("vacuum", flag.ExitOnError)
	dbPath := vacuumFlag.String("db", "data/contacts.db", "Path to the contacts database")
	vacuumFlag.Parse(os.Args[2:])

	before, err := os.Stat(*dbPath)
	if err != nil {
		log.Fatalf("Database not found: %s", *dbPath)
	}

	db, err := database.NewContactsDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Vacuum(); err != nil {
		log.Fatalf("Vacuum failed: %v", err)
	}

	after, err := os.Stat(*dbPath)
	if err != nil {
		log.Fatalf("Error checking database after vacuum: %v", err)
	}

	fmt.Printf("Vacuum completed: %s -> %s\n", humanSize(before.Size()), humanSize(after.Size()))
}

func humanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
