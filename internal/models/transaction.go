package models

import "time"

// Transaction is a ledger row. Amounts are stored as minor-unit integers;
// amount_in_default carries the same minor-unit amount and is translated
// through the owning currency's rate on read.
type Transaction struct {
	TransactionID   string    `json:"transactionID"` // Primary Key (UUID)
	UserID          string    `json:"userID"`
	UserCurrencyID  string    `json:"userCurrencyID"` // FK -> UserCurrency
	Amount          int64     `json:"amount"`
	AmountInDefault int64     `json:"amountInDefault"`
	TransactionType string    `json:"transactionType"`
	Notes           string    `json:"notes"`
	Date            time.Time `json:"date"`
	AuditFields
}
