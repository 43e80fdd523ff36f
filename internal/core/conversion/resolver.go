package conversion

import "github.com/preqsy/monetra-server/internal/core/domain"

// Resolve picks the user currency a single operation should use, along with
// the user's default entry. An empty requestedID, or an id that matches no
// entry, falls back to the default silently rather than erroring; bad
// client-supplied ids have always been absorbed this way and callers depend
// on it.
//
// Resolve never mutates the passed slice.
func Resolve(currencies []domain.UserCurrency, requestedID string) (selected, def domain.UserCurrency, err error) {
	if len(currencies) == 0 {
		return domain.UserCurrency{}, domain.UserCurrency{}, ErrNoCurrencies
	}

	found := false
	for _, uc := range currencies {
		if uc.IsDefault {
			def = uc
			found = true
			break
		}
	}
	if !found {
		return domain.UserCurrency{}, domain.UserCurrency{}, ErrNoDefaultCurrency
	}

	if requestedID != "" {
		for _, uc := range currencies {
			if uc.UserCurrencyID == requestedID {
				return uc, def, nil
			}
		}
	}
	return def, def, nil
}
