package converter

import (
	"fmt"
	"math"

	"github.com/treasuryfx/currency-api/internal/catalog"
	"github.com/treasuryfx/currency-api/internal/model"
)

// Converter computes conversions against a rate catalog. It re-checks
// catalog membership and the anchor rule on every call, so it stays safe
// even when handed input that skipped validation.
type Converter struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Converter {
	return &Converter{
		catalog: c,
	}
}

// Convert returns amount expressed in the target currency, rounded to cent
// granularity. A pair of identical currencies short-circuits without
// touching the catalog.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return round2(amount), nil
	}

	fromEntry, ok := c.catalog.Get(from)
	if !ok {
		return 0, fmt.Errorf("%q: %w", from, model.ErrCurrencyNotFound)
	}

	toEntry, ok := c.catalog.Get(to)
	if !ok {
		return 0, fmt.Errorf("%q: %w", to, model.ErrCurrencyNotFound)
	}

	switch c.catalog.Anchor() {
	case from:
		return round2(amount * toEntry.Rate), nil
	case to:
		return round2(amount / fromEntry.Rate), nil
	default:
		return 0, model.ErrUnsupportedPair
	}
}

// EffectiveRate returns the factor applied for the pair, before any
// rounding of the converted amount.
func (c *Converter) EffectiveRate(from, to string) (float64, error) {
	if from == to {
		return 1.0, nil
	}

	fromEntry, ok := c.catalog.Get(from)
	if !ok {
		return 0, fmt.Errorf("%q: %w", from, model.ErrCurrencyNotFound)
	}

	toEntry, ok := c.catalog.Get(to)
	if !ok {
		return 0, fmt.Errorf("%q: %w", to, model.ErrCurrencyNotFound)
	}

	switch c.catalog.Anchor() {
	case from:
		return toEntry.Rate, nil
	case to:
		return 1 / fromEntry.Rate, nil
	default:
		return 0, model.ErrUnsupportedPair
	}
}

// round2 rounds half away from zero at two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
