package services

import (
	"context"

	"github.com/preqsy/monetra-server/internal/core/domain"
	"github.com/preqsy/monetra-server/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction owned by the user,
	// with the default-currency amount translated.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (dto.TransactionResponse, error)

	// ListTransactions retrieves the user's transactions with per-row
	// default-currency amounts already translated.
	ListTransactions(ctx context.Context, userID string) ([]dto.TransactionResponse, error)
}

// TransactionWriterSvc defines write operations for ledger transactions
type TransactionWriterSvc interface {
	// CreateTransaction records a transaction, converting the major-unit
	// request amount into minor units of the resolved currency.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
