package conversion

import (
	"github.com/shopspring/decimal"

	"github.com/preqsy/monetra-server/internal/core/domain"
)

// translationScale is the fixed quantization applied to every translated
// amount. It is deliberately two places regardless of the target currency's
// native precision; downstream display logic compensates for zero-decimal
// currencies and changing this would shift stored aggregates.
const translationScale = 2

// AmountInDefault converts a stored minor-unit amount into its major-unit
// equivalent in the user's default currency by dividing by the owning
// entry's exchange rate. The default entry's rate is 1 after a rebase, so the
// source rate alone is enough. The result is rounded half-up to exactly two
// decimal places.
func AmountInDefault(amountMinor int64, uc domain.UserCurrency) (decimal.Decimal, error) {
	if uc.ExchangeRate.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return decimal.NewFromInt(amountMinor).Div(uc.ExchangeRate).Round(translationScale), nil
}
