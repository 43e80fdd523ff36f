package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/preqsy/monetra-server/internal/core/domain"
)

// AddUserCurrencyRequest defines the data needed to subscribe a user to a currency.
// ExchangeRate is optional: when omitted the current market quote relative to
// the user's default currency is used.
type AddUserCurrencyRequest struct {
	CurrencyCode string           `json:"currencyCode" binding:"required,uppercase,len=3"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty" binding:"omitempty,positivedecimal"`
	IsDefault    bool             `json:"isDefault"`
}

// SetDefaultCurrencyRequest selects which of the user's currencies becomes the default.
type SetDefaultCurrencyRequest struct {
	UserCurrencyID string `json:"userCurrencyID" binding:"required,uuid"`
}

// CurrencyResponse defines the data returned for a reference currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Decimals     int    `json:"decimals"`
}

// UserCurrencyResponse defines the data returned for a user currency entry.
type UserCurrencyResponse struct {
	UserCurrencyID string    `json:"userCurrencyID"`
	CurrencyCode   string    `json:"currencyCode"`
	ExchangeRate   string    `json:"exchangeRate"`
	IsDefault      bool      `json:"isDefault"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Decimals:     curr.Decimals,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// ToUserCurrencyResponse converts a domain.UserCurrency to UserCurrencyResponse DTO
func ToUserCurrencyResponse(uc *domain.UserCurrency) UserCurrencyResponse {
	return UserCurrencyResponse{
		UserCurrencyID: uc.UserCurrencyID,
		CurrencyCode:   uc.CurrencyCode,
		ExchangeRate:   uc.ExchangeRate.String(),
		IsDefault:      uc.IsDefault,
		CreatedAt:      uc.CreatedAt,
		LastUpdatedAt:  uc.LastUpdatedAt,
	}
}

// ToListUserCurrencyResponse converts a slice of domain.UserCurrency to UserCurrencyResponse DTOs
func ToListUserCurrencyResponse(ucs []domain.UserCurrency) []UserCurrencyResponse {
	res := make([]UserCurrencyResponse, len(ucs))
	for i := range ucs {
		res[i] = ToUserCurrencyResponse(&ucs[i])
	}
	return res
}
