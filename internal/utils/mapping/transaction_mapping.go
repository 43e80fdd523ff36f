package mapping

import (
	"github.com/preqsy/monetra-server/internal/core/domain"
	"github.com/preqsy/monetra-server/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		UserCurrencyID:  d.UserCurrencyID,
		Amount:          d.Amount,
		AmountInDefault: d.AmountInDefault,
		TransactionType: string(d.TransactionType),
		Notes:           d.Notes,
		Date:            d.Date,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		UserCurrencyID:  m.UserCurrencyID,
		Amount:          m.Amount,
		AmountInDefault: m.AmountInDefault,
		TransactionType: domain.TransactionType(m.TransactionType),
		Notes:           m.Notes,
		Date:            m.Date,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
