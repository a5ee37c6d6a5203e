package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"cookbook-manager/config"
	"cookbook-manager/cookbook"
	"cookbook-manager/logger"
)

func main() {
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "import", term.IsTerminal(int(os.Stderr.Fd())))
	defer log.Sync()

	csvPath := "cookbooks.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	db, err := cookbook.NewDatabase(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating tables: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Importing cookbooks from %s into %s...\n", csvPath, cfg.Database.Path)

	books, parseErrs := cookbook.ParseCSV(f)
	for _, err := range parseErrs {
		fmt.Printf("Warning: skipping %v\n", err)
		log.Warn("skip row", zap.Error(err))
	}

	successCount := 0
	errorCount := len(parseErrs)
	for _, c := range books {
		fmt.Printf("Importing: %s by %s... ", c.Title, c.Author)

		id, err := db.AddCookbook(c)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			log.Error("add cookbook", zap.String("title", c.Title), zap.Error(err))
			errorCount++
			continue
		}

		c.ID = id
		fmt.Printf("SUCCESS (ID: %d)\n", id)
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d cookbooks\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)

	if successCount > 0 {
		fmt.Println("\nImported cookbooks:")
		fmt.Printf("%-3s %-40s %-25s %-6s %s\n", "ID", "Title", "Author", "Rating", "Cover")
		fmt.Println(strings.Repeat("-", 95))
		for _, c := range books {
			if c.ID == 0 {
				continue
			}
			fmt.Printf("%-3d %-40s %-25s %-6d %s\n", c.ID, truncateString(c.Title, 40), truncateString(c.Author, 25), c.AestheticRating, c.CoverColor)
		}
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
