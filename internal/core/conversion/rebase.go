package conversion

import (
	"fmt"

	"github.com/preqsy/monetra-server/internal/core/domain"
)

// Rebase recomputes every exchange rate in a user's currency set so that
// newDefaultCode becomes the new base with a rate of exactly 1. Each rate,
// including the old default's, is divided by the new default's current rate;
// the default flag is moved to the new default entry.
//
// The full replacement set is returned and the caller must persist every row
// in a single transaction: a partial write leaves the set mutually
// inconsistent and can break the one-default invariant.
func Rebase(currencies []domain.UserCurrency, newDefaultCode string) ([]domain.UserCurrency, error) {
	var divisor domain.UserCurrency
	found := false
	for _, uc := range currencies {
		if uc.CurrencyCode == newDefaultCode {
			divisor = uc
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, newDefaultCode)
	}
	if !divisor.ExchangeRate.IsPositive() {
		return nil, fmt.Errorf("%w: rate for %s is %s", ErrInvalidRate, newDefaultCode, divisor.ExchangeRate)
	}

	updated := make([]domain.UserCurrency, len(currencies))
	for i, uc := range currencies {
		uc.ExchangeRate = uc.ExchangeRate.Div(divisor.ExchangeRate)
		uc.IsDefault = uc.CurrencyCode == newDefaultCode
		updated[i] = uc
	}
	return updated, nil
}
