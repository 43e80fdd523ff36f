package mapping

import (
	"github.com/preqsy/monetra-server/internal/core/domain"
	"github.com/preqsy/monetra-server/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		Decimals:     d.Decimals,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Decimals:     m.Decimals,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// ToModelUserCurrency converts a domain UserCurrency to a model UserCurrency
func ToModelUserCurrency(d domain.UserCurrency) models.UserCurrency {
	return models.UserCurrency{
		UserCurrencyID: d.UserCurrencyID,
		UserID:         d.UserID,
		CurrencyCode:   d.CurrencyCode,
		ExchangeRate:   d.ExchangeRate,
		IsDefault:      d.IsDefault,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserCurrency converts a model UserCurrency to a domain UserCurrency
func ToDomainUserCurrency(m models.UserCurrency) domain.UserCurrency {
	return domain.UserCurrency{
		UserCurrencyID: m.UserCurrencyID,
		UserID:         m.UserID,
		CurrencyCode:   m.CurrencyCode,
		ExchangeRate:   m.ExchangeRate,
		IsDefault:      m.IsDefault,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserCurrencySlice converts a slice of model UserCurrencies to domain UserCurrencies
func ToDomainUserCurrencySlice(ms []models.UserCurrency) []domain.UserCurrency {
	ds := make([]domain.UserCurrency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserCurrency(m)
	}
	return ds
}
