package model

import "errors"

var (
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrUnsupportedPair  = errors.New("at least one currency must be " + AnchorCurrency)
	ErrEmptySnapshot    = errors.New("no rates found for snapshot date")
)
