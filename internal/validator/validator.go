package validator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/treasuryfx/currency-api/internal/catalog"
	"github.com/treasuryfx/currency-api/internal/model"
)

// Validator checks raw conversion parameters against the rate catalog.
type Validator struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Validator {
	return &Validator{
		catalog: c,
	}
}

// Validate turns raw parameters into a ConversionRequest or a list of field
// errors. Missing parameters short-circuit: a single "parameters" error
// names every absent field and nothing else is checked. All remaining
// checks accumulate independently.
func (v *Validator) Validate(params model.ConvertParams) (*model.ConversionRequest, []model.FieldError) {
	missing := make([]string, 0, 3)

	if params.Amount == "" {
		missing = append(missing, "amount")
	}

	if params.From == "" {
		missing = append(missing, "from")
	}

	if params.To == "" {
		missing = append(missing, "to")
	}

	if len(missing) > 0 {
		return nil, []model.FieldError{{
			Field:   "parameters",
			Message: "Missing required parameters: " + strings.Join(missing, ", "),
		}}
	}

	var fieldErrs []model.FieldError

	amount, ok := parseLeadingFloat(params.Amount)

	switch {
	case !ok:
		fieldErrs = append(fieldErrs, model.FieldError{
			Field:   "amount",
			Message: "Amount must be a valid number",
		})
	case amount <= 0:
		fieldErrs = append(fieldErrs, model.FieldError{
			Field:   "amount",
			Message: "Amount must be greater than 0",
		})
	}

	if !v.catalog.Has(params.From) {
		fieldErrs = append(fieldErrs, model.FieldError{
			Field:   "from",
			Message: fmt.Sprintf("Currency '%s' is not supported", params.From),
		})
	}

	if !v.catalog.Has(params.To) {
		fieldErrs = append(fieldErrs, model.FieldError{
			Field:   "to",
			Message: fmt.Sprintf("Currency '%s' is not supported", params.To),
		})
	}

	anchor := v.catalog.Anchor()

	if params.From != anchor && params.To != anchor {
		fieldErrs = append(fieldErrs, model.FieldError{
			Field:   "currencies",
			Message: "At least one currency must be " + anchor,
		})
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return &model.ConversionRequest{
		Amount: amount,
		From:   params.From,
		To:     params.To,
	}, nil
}

// parseLeadingFloat parses the longest numeric prefix of s, strtod-style:
// "12.5abc" yields 12.5. Non-finite results count as no number at all.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	for end := len(s); end > 0; end-- {
		value, err := strconv.ParseFloat(s[:end], 64)
		if err == nil {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return 0, false
			}

			return value, true
		}

		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, false
		}
	}

	return 0, false
}
