package bookgen

import "errors"

// ErrTooFewCurrencies indicates a topology's minimum currency count was
// not met (e.g. a cycle needs at least 3).
var ErrTooFewCurrencies = errors.New("bookgen: too few currencies for this topology")

// ErrEmptyCurrency indicates a blank currency code was supplied.
var ErrEmptyCurrency = errors.New("bookgen: currency code must not be empty")

// ErrDuplicateCurrency indicates the same currency code appeared twice in
// a single currency list.
var ErrDuplicateCurrency = errors.New("bookgen: currency list contains duplicates")
