package conversion

import "errors"

// ErrNoCurrencies indicates the user has no currencies configured at all.
var ErrNoCurrencies = errors.New("user has no currencies configured")

// ErrNoDefaultCurrency indicates no entry in the user's set is flagged default.
// This should be unreachable given the one-default invariant and points at
// data corruption when it fires.
var ErrNoDefaultCurrency = errors.New("no default currency configured")

// ErrCurrencyNotFound indicates the requested currency code is not in the user's set.
var ErrCurrencyNotFound = errors.New("currency not found in user currency set")

// ErrInvalidRate indicates a zero or negative exchange rate.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrDivisionByZero indicates a translation was attempted against a zero rate.
var ErrDivisionByZero = errors.New("exchange rate division by zero")

// ErrUnknownCurrency indicates a currency code missing from the decimal table.
// Only returned by strict-mode codecs; the default codec falls back to 2 decimals.
var ErrUnknownCurrency = errors.New("unknown currency code")
