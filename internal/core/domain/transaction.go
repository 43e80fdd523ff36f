package domain

import "time"

// TransactionType distinguishes money moving in from money moving out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is a ledger record. Amount is stored in minor units of the
// currency referenced by UserCurrencyID. AmountInDefault holds the same
// minor-unit amount; reads divide it by the owning entry's current exchange
// rate to report the default-currency value, so it needs no recompute when
// rates or the default flag change.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	UserCurrencyID  string          `json:"userCurrencyID"` // FK -> UserCurrency
	Amount          int64           `json:"amount"`
	AmountInDefault int64           `json:"amountInDefault"`
	TransactionType TransactionType `json:"transactionType"`
	Notes           string          `json:"notes"`
	Date            time.Time       `json:"date"`
	AuditFields
}
