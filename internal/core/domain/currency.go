package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency in the domain.
// Decimals is the number of minor-unit decimal places (USD=2, JPY=0, BHD=3).
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Decimals     int    `json:"decimals"`
	AuditFields
}

// UserCurrency is a user's subscription to a currency. ExchangeRate expresses
// how many units of the user's default-relative base one unit of this currency
// is worth; the default entry always carries a rate of 1 after a rebase.
// Exactly one entry per user has IsDefault set once the user has any currency.
type UserCurrency struct {
	UserCurrencyID string          `json:"userCurrencyID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`         // FK -> User
	CurrencyCode   string          `json:"currencyCode"`   // FK -> Currency.currencyCode
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	IsDefault      bool            `json:"isDefault"`
	AuditFields
}
