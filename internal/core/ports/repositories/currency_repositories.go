package repositories

import (
	"context"

	"github.com/preqsy/monetra-server/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency reference data
type CurrencyWriter interface {
	// SaveCurrency persists a currency (upsert; used for reference data seeding).
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// UserCurrencyReader defines read operations for a user's currency set
type UserCurrencyReader interface {
	// ListUserCurrencies retrieves the user's full currency set.
	ListUserCurrencies(ctx context.Context, userID string) ([]domain.UserCurrency, error)

	// FindUserCurrencyByCode retrieves the user's entry for a currency code, if any.
	FindUserCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.UserCurrency, error)
}

// UserCurrencyWriter defines write operations for a user's currency set
type UserCurrencyWriter interface {
	// SaveUserCurrency persists a single new user currency entry.
	SaveUserCurrency(ctx context.Context, userCurrency domain.UserCurrency) error

	// ReplaceUserCurrencies rewrites every currency row for the user and the
	// stored default-currency amount on each transaction in one database
	// transaction. The amountsInDefault map is keyed by transaction ID and
	// carries each transaction's own minor-unit amount; reads translate it
	// through the current rate. Rebase output must go through this method:
	// a partial write would break the one-default invariant and leave rates
	// mutually inconsistent.
	ReplaceUserCurrencies(ctx context.Context, userID string, currencies []domain.UserCurrency, amountsInDefault map[string]int64) error
}

// UserCurrencyRepositoryFacade combines all user-currency repository interfaces
type UserCurrencyRepositoryFacade interface {
	UserCurrencyReader
	UserCurrencyWriter
}

// UserCurrencyRepositoryWithTx extends UserCurrencyRepositoryFacade with transaction capabilities
type UserCurrencyRepositoryWithTx interface {
	UserCurrencyRepositoryFacade
	TransactionManager
}
