package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateProvider supplies live market quotes. LatestRates returns the
// conversion rate for every supported currency relative to the given base
// code, i.e. 1 unit of base equals rates[code] units of code.
type ExchangeRateProvider interface {
	LatestRates(ctx context.Context, baseCurrencyCode string) (map[string]decimal.Decimal, error)
}
