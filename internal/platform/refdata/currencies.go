// Package refdata ships the static currency reference dataset the engine is
// seeded with. The dataset is embedded at build time; nothing is read from
// disk at runtime.
package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/preqsy/monetra-server/internal/core/conversion"
	"github.com/preqsy/monetra-server/internal/core/domain"
)

//go:embed currencies.json
var currenciesJSON []byte

type currencyRecord struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals *int   `json:"decimals"`
}

// Currencies parses the embedded reference dataset into domain currencies.
// Records without an explicit decimals field default to 2.
func Currencies() ([]domain.Currency, error) {
	var records []currencyRecord
	if err := json.Unmarshal(currenciesJSON, &records); err != nil {
		return nil, fmt.Errorf("failed to parse embedded currency dataset: %w", err)
	}

	currencies := make([]domain.Currency, len(records))
	for i, rec := range records {
		decimals := conversion.DefaultDecimals
		if rec.Decimals != nil {
			decimals = *rec.Decimals
		}
		currencies[i] = domain.Currency{
			CurrencyCode: rec.Code,
			Name:         rec.Name,
			Symbol:       rec.Symbol,
			Decimals:     decimals,
		}
	}
	return currencies, nil
}

// DecimalTable builds the immutable code->decimals lookup from the embedded
// dataset.
func DecimalTable() (conversion.DecimalTable, error) {
	currencies, err := Currencies()
	if err != nil {
		return conversion.DecimalTable{}, err
	}
	return conversion.NewDecimalTable(currencies), nil
}
