package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/preqsy/monetra-server/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is a major-unit decimal in the selected currency; UserCurrencyID is
// optional and falls back to the user's default currency when omitted or
// unmatched.
type CreateTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	UserCurrencyID  string          `json:"userCurrencyID,omitempty" binding:"omitempty,uuid"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Notes           string          `json:"notes,omitempty"`
	Date            *time.Time      `json:"date,omitempty"`
}

// TransactionResponse defines the data returned for a transaction. Amounts are
// minor-unit integers; AmountInDefault carries the display-oriented major
// amount in the user's default currency.
type TransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	UserCurrencyID  string    `json:"userCurrencyID"`
	CurrencyCode    string    `json:"currencyCode"`
	Amount          int64     `json:"amount"`
	AmountInDefault string    `json:"amountInDefault"`
	TransactionType string    `json:"transactionType"`
	Notes           string    `json:"notes,omitempty"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction plus its translated
// default-currency amount to a TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction, currencyCode string, amountInDefault decimal.Decimal) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		UserCurrencyID:  txn.UserCurrencyID,
		CurrencyCode:    currencyCode,
		Amount:          txn.Amount,
		AmountInDefault: amountInDefault.StringFixed(2),
		TransactionType: string(txn.TransactionType),
		Notes:           txn.Notes,
		Date:            txn.Date,
		CreatedAt:       txn.CreatedAt,
	}
}
