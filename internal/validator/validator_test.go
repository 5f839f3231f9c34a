package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treasuryfx/currency-api/internal/catalog"
	"github.com/treasuryfx/currency-api/internal/model"
)

const testCSV = `record_date,country_currency_desc,exchange_rate,effective_date
2025-06-30,Canada-Dollar,1.369,2025-06-30
2025-06-30,Euro Zone-Euro,0.851,2025-06-30
`

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	cat, err := catalog.Load(strings.NewReader(testCSV), "2025-06-30")
	require.NoError(t, err)

	return New(cat)
}

func fields(errs []model.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		names = append(names, fieldErr.Field)
	}

	return names
}

func TestValidateOK(t *testing.T) {
	v := newTestValidator(t)

	request, errs := v.Validate(model.ConvertParams{
		Amount: "100",
		From:   model.AnchorCurrency,
		To:     "Canada-Dollar",
	})
	require.Empty(t, errs)
	require.InDelta(t, 100, request.Amount, 1e-9)
	require.Equal(t, model.AnchorCurrency, request.From)
	require.Equal(t, "Canada-Dollar", request.To)
}

func TestValidateAllMissing(t *testing.T) {
	v := newTestValidator(t)

	request, errs := v.Validate(model.ConvertParams{})
	require.Nil(t, request)
	require.Len(t, errs, 1, "missing parameters must short-circuit every other check")
	require.Equal(t, "parameters", errs[0].Field)
	require.Contains(t, errs[0].Message, "amount")
	require.Contains(t, errs[0].Message, "from")
	require.Contains(t, errs[0].Message, "to")
}

func TestValidateOneMissing(t *testing.T) {
	v := newTestValidator(t)

	_, errs := v.Validate(model.ConvertParams{
		From: model.AnchorCurrency,
		To:   "Canada-Dollar",
	})
	require.Len(t, errs, 1)
	require.Equal(t, "parameters", errs[0].Field)
	require.Contains(t, errs[0].Message, "amount")
	require.NotContains(t, errs[0].Message, "from")
}

func TestValidateAmount(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		amount  string
		message string
	}{
		{name: "not a number", amount: "abc", message: "valid number"},
		{name: "negative", amount: "-5", message: "greater than 0"},
		{name: "zero", amount: "0", message: "greater than 0"},
		{name: "nan literal", amount: "NaN", message: "valid number"},
		{name: "overflow", amount: "1e999", message: "valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, errs := v.Validate(model.ConvertParams{
				Amount: tt.amount,
				From:   model.AnchorCurrency,
				To:     "Canada-Dollar",
			})
			require.Nil(t, request)
			require.Len(t, errs, 1)
			require.Equal(t, "amount", errs[0].Field)
			require.Contains(t, errs[0].Message, tt.message)
		})
	}
}

func TestValidateLeadingFloat(t *testing.T) {
	v := newTestValidator(t)

	request, errs := v.Validate(model.ConvertParams{
		Amount: "12.5abc",
		From:   model.AnchorCurrency,
		To:     "Canada-Dollar",
	})
	require.Empty(t, errs)
	require.InDelta(t, 12.5, request.Amount, 1e-9)

	request, errs = v.Validate(model.ConvertParams{
		Amount: " 42 ",
		From:   model.AnchorCurrency,
		To:     "Canada-Dollar",
	})
	require.Empty(t, errs)
	require.InDelta(t, 42, request.Amount, 1e-9)
}

func TestValidateUnknownCurrencies(t *testing.T) {
	v := newTestValidator(t)

	_, errs := v.Validate(model.ConvertParams{
		Amount: "10",
		From:   "Narnia-Coin",
		To:     model.AnchorCurrency,
	})
	require.Equal(t, []string{"from"}, fields(errs))
	require.Contains(t, errs[0].Message, "Narnia-Coin")
	require.Contains(t, errs[0].Message, "not supported")

	_, errs = v.Validate(model.ConvertParams{
		Amount: "10",
		From:   model.AnchorCurrency,
		To:     "Gondor-Crown",
	})
	require.Equal(t, []string{"to"}, fields(errs))
	require.Contains(t, errs[0].Message, "Gondor-Crown")
}

func TestValidateNonAnchorPair(t *testing.T) {
	v := newTestValidator(t)

	_, errs := v.Validate(model.ConvertParams{
		Amount: "10",
		From:   "Canada-Dollar",
		To:     "Euro Zone-Euro",
	})
	require.Equal(t, []string{"currencies"}, fields(errs))
	require.Contains(t, errs[0].Message, model.AnchorCurrency)
}

func TestValidateAccumulates(t *testing.T) {
	v := newTestValidator(t)

	_, errs := v.Validate(model.ConvertParams{
		Amount: "abc",
		From:   "Narnia-Coin",
		To:     "Euro Zone-Euro",
	})
	require.Equal(t, []string{"amount", "from", "currencies"}, fields(errs))
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		ok    bool
	}{
		{in: "100", value: 100, ok: true},
		{in: "12.5abc", value: 12.5, ok: true},
		{in: "-3.2", value: -3.2, ok: true},
		{in: "1e3", value: 1000, ok: true},
		{in: "1e", value: 1, ok: true},
		{in: "abc", ok: false},
		{in: "", ok: false},
		{in: "NaN", ok: false},
		{in: "+Inf", ok: false},
		{in: "1e999", ok: false},
	}

	for _, tt := range tests {
		value, ok := parseLeadingFloat(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)

		if tt.ok {
			require.InDelta(t, tt.value, value, 1e-9, tt.in)
		}
	}
}
