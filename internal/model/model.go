package model

// AnchorCurrency is the currency every supported conversion must involve.
// All catalog rates are expressed as units of foreign currency per one unit
// of the anchor.
const AnchorCurrency = "United States-Dollar"

// RateEntry is one row of the rate catalog.
type RateEntry struct {
	Currency      string
	Rate          float64
	EffectiveDate string
}

// ConvertParams holds the raw query parameters of a conversion request.
// Every field stays a string until the validator has seen it.
type ConvertParams struct {
	Amount string `schema:"amount"`
	From   string `schema:"from"`
	To     string `schema:"to"`
}

// ConversionRequest is a conversion request that passed validation: the
// amount is positive and finite, both currencies are catalog members and at
// least one of them is the anchor.
type ConversionRequest struct {
	Amount float64
	From   string
	To     string
}

// FieldError is a single validation failure tied to a request field.
type FieldError struct {
	Field   string
	Message string
}
