package conversion

import (
	"strings"

	"github.com/preqsy/monetra-server/internal/core/domain"
)

// DefaultDecimals is the minor-unit precision assumed for currency codes
// missing from the table.
const DefaultDecimals = 2

// DecimalTable is an immutable lookup from ISO 4217 currency code to the
// number of minor-unit decimal places. It is constructed once from reference
// data and passed into the codec explicitly; nothing in this package reads
// global state.
type DecimalTable struct {
	decimals map[string]int
}

// NewDecimalTable builds a table from currency reference data.
func NewDecimalTable(currencies []domain.Currency) DecimalTable {
	m := make(map[string]int, len(currencies))
	for _, c := range currencies {
		m[strings.ToUpper(c.CurrencyCode)] = c.Decimals
	}
	return DecimalTable{decimals: m}
}

// NewDecimalTableFromMap builds a table from a code->decimals map.
// The map is copied so later mutation by the caller cannot leak in.
func NewDecimalTableFromMap(decimals map[string]int) DecimalTable {
	m := make(map[string]int, len(decimals))
	for code, d := range decimals {
		m[strings.ToUpper(code)] = d
	}
	return DecimalTable{decimals: m}
}

// Decimals returns the minor-unit decimal places for a code, case-insensitively.
func (t DecimalTable) Decimals(currencyCode string) (int, bool) {
	d, ok := t.decimals[strings.ToUpper(currencyCode)]
	return d, ok
}

// Len returns the number of currencies in the table.
func (t DecimalTable) Len() int {
	return len(t.decimals)
}
