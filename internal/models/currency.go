package models

import "github.com/shopspring/decimal"

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Decimals     int    `json:"decimals"`     // minor-unit decimal places
	AuditFields
}

// UserCurrency stores a user's subscription to a currency together with the
// default-relative exchange rate.
// Note: Rate uses github.com/shopspring/decimal to avoid float drift.
type UserCurrency struct {
	UserCurrencyID string          `json:"userCurrencyID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`
	CurrencyCode   string          `json:"currencyCode"` // FK -> Currency.currencyCode
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	IsDefault      bool            `json:"isDefault"`
	AuditFields
}
