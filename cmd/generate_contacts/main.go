package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var firstNames = []string{
	"Rajesh", "Priya", "Amit", "Sneha", "Vikram", "Ananya", "Arjun", "Kavita",
	"Rahul", "Deepa", "Suresh", "Meera", "Karan", "Pooja", "Sanjay", "Divya",
	"Manoj", "Neha", "Ashok", "Ritu", "Nikhil", "Sunita", "Harish", "Lakshmi",
}

var lastNames = []string{
	"Kumar", "Sharma", "Singh", "Patel", "Gupta", "Reddy", "Iyer", "Nair",
	"Joshi", "Mehta", "Verma", "Chopra", "Desai", "Rao", "Malhotra", "Banerjee",
}

var emailDomains = []string{"gmail.com", "yahoo.in", "outlook.com", "rediffmail.com"}

// Case variants are deliberate so generated files exercise tag grouping.
var tagPool = []string{
	"lead", "Lead", "customer", "Customer", "VIP", "vip", "newsletter",
	"Mumbai", "mumbai", "Delhi", "bangalore", "Bangalore", "retail",
	"wholesale", "festival-offer",
}

func main() {
	var (
		count   = flag.Int("count", 200, "Number of contact rows to generate")
		outPath = flag.String("out", "contacts_test.csv", "Output CSV file")
		dirty   = flag.Float64("dirty", 0.2, "Fraction of rows with data problems (0 to 1)")
		seed    = flag.Int64("seed", 0, "Random seed (0 picks a random one)")
	)
	flag.Parse()

	if *count <= 0 {
		fmt.Println("Usage: generate_contacts [-count <rows>] [-out <file>] [-dirty <fraction>] [-seed <n>]")
		os.Exit(1)
	}
	if *dirty < 0 || *dirty > 1 {
		log.Fatalf("Invalid dirty fraction %g: must be between 0 and 1", *dirty)
	}

	gofakeit.Seed(*seed)

	file, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create output file %s: %v", *outPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Full Name", "Mobile Number", "Email", "Tags"}); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}

	dirtyPct := int(*dirty * 100)
	dirtyRows := 0
	duplicateRows := 0

	// Base numbers already emitted, reused for duplicate rows.
	var seenPhones []string

	for i := 0; i < *count; i++ {
		name := generateName()
		digits := generatePhoneDigits()
		phone := formatPhone(digits)
		email := generateEmail(name)
		tags := generateTags()

		if gofakeit.Number(1, 100) <= dirtyPct {
			dirtyRows++
			switch gofakeit.Number(0, 5) {
			case 0:
				phone = gofakeit.Numerify("######")
			case 1:
				phone = "call " + gofakeit.Numerify("98#####")
			case 2:
				// Starts with a digit below 6, so it is not a mobile number.
				phone = gofakeit.Numerify("11#######")
			case 3:
				name = ""
			case 4:
				email = strings.ReplaceAll(email, "@", " at ")
			case 5:
				if len(seenPhones) > 0 {
					digits = seenPhones[gofakeit.Number(0, len(seenPhones)-1)]
					phone = formatPhone(digits)
					duplicateRows++
				} else {
					// Spaced digit groups split into unusable tokens.
					phone = digits[:5] + " " + digits[5:]
				}
			}
		} else if gofakeit.Number(1, 100) <= 8 {
			// Clean rows occasionally carry a second number in the same cell.
			phone = phone + ", " + formatPhone(generatePhoneDigits())
		}

		seenPhones = append(seenPhones, digits)

		if err := writer.Write([]string{name, phone, email, tags}); err != nil {
			log.Fatalf("Failed to write row %d: %v", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}

	fmt.Printf("\n=== Generated Contacts ===\n")
	fmt.Printf("Rows: %d\n", *count)
	fmt.Printf("Dirty rows: %d\n", dirtyRows)
	fmt.Printf("Duplicate rows: %d\n", duplicateRows)
	fmt.Printf("Output: %s\n", *outPath)
}

// generateName builds an Indian full name from fixed pools.
func generateName() string {
	return gofakeit.RandomString(firstNames) + " " + gofakeit.RandomString(lastNames)
}

// generatePhoneDigits returns a bare 10-digit Indian mobile number
// starting with 6-9.
func generatePhoneDigits() string {
	return gofakeit.RandomString([]string{"6", "7", "8", "9"}) + gofakeit.Numerify("#########")
}

// formatPhone renders the digits in one of the shapes seen in real
// uploaded files: bare, +91 or 0 prefixed, or dashed. Spaced digit
// groups are left to the dirty branch: the importer treats whitespace
// as a number separator, so "98765 43210" never normalizes.
func formatPhone(digits string) string {
	switch gofakeit.Number(0, 4) {
	case 0:
		return "+91" + digits
	case 1:
		return "+91-" + digits
	case 2:
		return "0" + digits
	case 3:
		return digits[:5] + "-" + digits[5:]
	default:
		return digits
	}
}

func generateEmail(name string) string {
	// Part of the audience has no email at all.
	if gofakeit.Number(1, 100) <= 15 {
		return ""
	}
	if gofakeit.Bool() {
		return gofakeit.Email()
	}
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	if slug == "" {
		slug = gofakeit.Numerify("user####")
	}
	return slug + "@" + gofakeit.RandomString(emailDomains)
}

func generateTags() string {
	n := gofakeit.Number(0, 3)
	if n == 0 {
		return ""
	}
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		picked = append(picked, gofakeit.RandomString(tagPool))
	}
	return strings.Join(picked, "; ")
}
