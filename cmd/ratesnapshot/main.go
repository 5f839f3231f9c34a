// Command ratesnapshot trims a full Treasury "Rates of Exchange" CSV export
// down to the rows of a single record date, deduplicated first-seen-wins.
// The output is the snapshot file embedded by internal/catalog.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	in := flag.String("in", "", "full rates-of-exchange CSV export")
	out := flag.String("out", "internal/catalog/data/rates.csv", "trimmed snapshot destination")
	date := flag.String("date", "", "record_date to keep (YYYY-MM-DD)")
	flag.Parse()

	if *in == "" || *date == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out, *date); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, outPath, date string) error {
	src, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("os.Open(inPath): %w", err)
	}

	defer src.Close()

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reader.ReadAll(): %w", err)
	}

	kept := [][]string{{"record_date", "country_currency_desc", "exchange_rate", "effective_date"}}
	seen := make(map[string]struct{})

	for _, row := range rows {
		if len(row) < 4 || row[0] != date {
			continue
		}

		if _, ok := seen[row[1]]; ok {
			continue
		}

		seen[row[1]] = struct{}{}
		kept = append(kept, row[:4])
	}

	if len(kept) == 1 {
		return fmt.Errorf("no rows found for record_date %s", date)
	}

	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("os.Create(outPath): %w", err)
	}

	writer := csv.NewWriter(dst)

	if err := writer.WriteAll(kept); err != nil {
		return fmt.Errorf("writer.WriteAll(kept): %w", err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("dst.Close(): %w", err)
	}

	log.Printf("wrote %d currencies for %s to %s", len(kept)-1, date, outPath)

	return nil
}
