package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	_ "embed"

	"github.com/treasuryfx/currency-api/internal/model"
	"go.uber.org/zap"
)

// Embedded snapshot of the Treasury "Rates of Exchange" dataset, trimmed to
// a single record date by cmd/ratesnapshot. Columns:
// record_date,country_currency_desc,exchange_rate,effective_date
//
//go:embed data/rates.csv
var snapshotCSV []byte

// Catalog is the read-only currency -> rate mapping. It is built once at
// startup and never mutated afterwards, so it is safe to share across
// request handlers without locking.
type Catalog struct {
	anchor  string
	entries map[string]model.RateEntry
}

// New builds the catalog from the embedded snapshot.
func New(snapshotDate string) (*Catalog, error) {
	return Load(bytes.NewReader(snapshotCSV), snapshotDate)
}

// FromFile builds the catalog from a rates CSV on disk instead of the
// embedded snapshot.
func FromFile(path, snapshotDate string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(path): %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			zap.L().With(zap.Error(err)).Warn("FromFile/file.Close()")
		}
	}()

	return Load(file, snapshotDate)
}

// Load reads rate rows from r and keeps those matching snapshotDate. The
// first occurrence of a currency wins; later duplicates are dropped. Rows
// with unparseable or non-positive rates are skipped. The anchor currency is
// always inserted at rate 1.0 regardless of what the source says about it.
func Load(r io.Reader, snapshotDate string) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader.ReadAll(): %w", err)
	}

	entries := make(map[string]model.RateEntry)

	for _, row := range rows {
		if len(row) < 4 || row[0] == "record_date" {
			continue
		}

		recordDate, currency, rawRate, effectiveDate := row[0], row[1], row[2], row[3]

		if recordDate != snapshotDate {
			continue
		}

		if _, ok := entries[currency]; ok {
			continue
		}

		rate, err := strconv.ParseFloat(rawRate, 64)
		if err != nil || rate <= 0 {
			zap.L().Debug("skipping rate row",
				zap.String("currency", currency),
				zap.String("rate", rawRate))

			continue
		}

		entries[currency] = model.RateEntry{
			Currency:      currency,
			Rate:          rate,
			EffectiveDate: effectiveDate,
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrEmptySnapshot, snapshotDate)
	}

	entries[model.AnchorCurrency] = model.RateEntry{
		Currency:      model.AnchorCurrency,
		Rate:          1.0,
		EffectiveDate: snapshotDate,
	}

	return &Catalog{
		anchor:  model.AnchorCurrency,
		entries: entries,
	}, nil
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]

	return ok
}

func (c *Catalog) Get(name string) (model.RateEntry, bool) {
	entry, ok := c.entries[name]

	return entry, ok
}

func (c *Catalog) Anchor() string {
	return c.anchor
}

// Currencies returns the sorted names of every catalog member.
func (c *Catalog) Currencies() []string {
	names := make([]string, 0, len(c.entries))

	for name := range c.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
