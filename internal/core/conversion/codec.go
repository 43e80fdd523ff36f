package conversion

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Codec converts between major-unit decimal amounts and integer minor-unit
// amounts. Rounding is always half-up (away from zero), in both directions,
// so a round trip reproduces any amount that already fits the currency's
// precision.
type Codec struct {
	table  DecimalTable
	strict bool
}

// NewCodec returns a codec that silently assumes DefaultDecimals for unknown
// currency codes. This matches the behaviour existing callers rely on.
func NewCodec(table DecimalTable) *Codec {
	return &Codec{table: table}
}

// NewStrictCodec returns a codec that rejects unknown currency codes with
// ErrUnknownCurrency instead of falling back to DefaultDecimals.
func NewStrictCodec(table DecimalTable) *Codec {
	return &Codec{table: table, strict: true}
}

func (c *Codec) decimalsFor(currencyCode string) (int, error) {
	decimals, ok := c.table.Decimals(currencyCode)
	if !ok {
		if c.strict {
			return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, currencyCode)
		}
		return DefaultDecimals, nil
	}
	return decimals, nil
}

// ToMinorUnits rounds amount to the currency's precision half-up and scales it
// to an integer minor-unit amount, e.g. 19.999 USD -> 2000.
func (c *Codec) ToMinorUnits(amount decimal.Decimal, currencyCode string) (int64, error) {
	decimals, err := c.decimalsFor(currencyCode)
	if err != nil {
		return 0, err
	}
	return amount.Round(int32(decimals)).Shift(int32(decimals)).IntPart(), nil
}

// FromMinorUnits scales an integer minor-unit amount back to a major-unit
// decimal. The division is by a power of ten, so the result is exact.
func (c *Codec) FromMinorUnits(amountMinor int64, currencyCode string) (decimal.Decimal, error) {
	decimals, err := c.decimalsFor(currencyCode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.New(amountMinor, -int32(decimals)), nil
}
