package services

import (
	"context"

	"github.com/preqsy/monetra-server/internal/core/domain"
	"github.com/preqsy/monetra-server/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency reference data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// UserCurrencyReaderSvc defines read operations over a user's currency set
type UserCurrencyReaderSvc interface {
	// ListUserCurrencies retrieves the user's full currency set.
	ListUserCurrencies(ctx context.Context, userID string) ([]domain.UserCurrency, error)

	// GetUserCurrency resolves the entry for one operation: the entry matching
	// requestedID when present, the user's default otherwise. Both the selected
	// and the default entry are returned.
	GetUserCurrency(ctx context.Context, userID, requestedID string) (selected, def domain.UserCurrency, err error)
}

// UserCurrencyWriterSvc defines write operations over a user's currency set
type UserCurrencyWriterSvc interface {
	// AddUserCurrency subscribes the user to a currency. The entry's rate comes
	// from the request when given, else from the market-rate provider relative
	// to the user's current default. Flagging the new entry default triggers a
	// full rebase.
	AddUserCurrency(ctx context.Context, userID string, req dto.AddUserCurrencyRequest) (*domain.UserCurrency, error)

	// SetDefaultCurrency rebases the user's currency set onto the given entry
	// and persists the full replacement set atomically. The updated set is
	// returned.
	SetDefaultCurrency(ctx context.Context, userID, userCurrencyID string) ([]domain.UserCurrency, error)

	// RefreshExchangeRates replaces every non-default rate with the latest
	// market quote relative to the user's default currency.
	RefreshExchangeRates(ctx context.Context, userID string) ([]domain.UserCurrency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	UserCurrencyReaderSvc
	UserCurrencyWriterSvc
}
