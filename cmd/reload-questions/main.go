package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/schoolpulse/surveyhub/config"
	"github.com/schoolpulse/surveyhub/database"
	"github.com/schoolpulse/surveyhub/log"
	"github.com/schoolpulse/surveyhub/survey"
)

// Maintenance tool: wipe one category's question bank and load it again
// from its CSV source, then list the distinct labels found.
func main() {
	var dbURL, category, file string
	flag.StringVar(&dbURL, "db-url", "surveyhub.sqlite", "path to SQLite3 DB file")
	flag.StringVar(&category, "category", "programming", "survey category to reload")
	flag.StringVar(&file, "file", "", "CSV source file (default the category's registered file)")
	flag.Parse()

	cat, ok := survey.Find(category)
	if !ok {
		log.Fatalf("unknown category %q", category)
	}
	if !cat.HasQuestions {
		log.Fatalf("category %q has no question bank", category)
	}
	if file == "" {
		file = cat.CSVFile
	}

	db, err := database.Open(config.Config{DBUrl: dbURL})
	if err != nil {
		log.Fatal("reload.db.open:", err)
	}
	defer db.Close()

	surveys := survey.New(db)
	ctx := context.Background()
	if err := surveys.EnsureSchema(ctx); err != nil {
		log.Fatal("reload.db.schema:", err)
	}

	f, err := os.Open(file)
	if err != nil {
		log.Fatal("reload.source:", err)
	}
	defer f.Close()

	count, labels, err := surveys.Reload(ctx, cat, f)
	if err != nil {
		log.Fatal("reload:", err)
	}

	fmt.Printf("Inserted %d questions.\n", count)
	if len(labels) > 0 {
		fmt.Println("Categories:")
		for _, label := range labels {
			fmt.Printf("- %s\n", label)
		}
	}
}
