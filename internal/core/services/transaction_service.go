package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/preqsy/monetra-server/internal/apperrors"
	"github.com/preqsy/monetra-server/internal/core/conversion"
	"github.com/preqsy/monetra-server/internal/core/domain"
	portsrepo "github.com/preqsy/monetra-server/internal/core/ports/repositories"
	portssvc "github.com/preqsy/monetra-server/internal/core/ports/services"
	"github.com/preqsy/monetra-server/internal/dto"
)

// TransactionService provides business logic for ledger transactions.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
	codec           *conversion.Codec
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	currencyService portssvc.CurrencySvcFacade,
	codec *conversion.Codec,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		currencyService: currencyService,
		codec:           codec,
	}
}

// CreateTransaction records a transaction. The request amount is a major-unit
// decimal in the resolved currency; it is stored as minor units, and the
// default-currency mirror starts out equal to it since new amounts are entered
// default-relative.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	amount := req.Amount
	if amount.IsNegative() {
		amount = amount.Abs()
	}

	selected, _, err := s.currencyService.GetUserCurrency(ctx, userID, req.UserCurrencyID)
	if err != nil {
		return nil, err
	}

	amountMinor, err := s.codec.ToMinorUnits(amount, selected.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to encode amount: %w", err)
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		UserCurrencyID:  selected.UserCurrencyID,
		Amount:          amountMinor,
		AmountInDefault: amountMinor,
		TransactionType: domain.TransactionType(req.TransactionType),
		Notes:           req.Notes,
		Date:            date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction owned by the user, with
// the default-currency amount translated through the owning entry's rate.
func (s *TransactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (dto.TransactionResponse, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return dto.TransactionResponse{}, fmt.Errorf("failed to get transaction in service: %w", err)
	}

	userCurrencies, err := s.currencyService.ListUserCurrencies(ctx, userID)
	if err != nil {
		return dto.TransactionResponse{}, err
	}
	for _, uc := range userCurrencies {
		if uc.UserCurrencyID != txn.UserCurrencyID {
			continue
		}
		amountInDefault, err := conversion.AmountInDefault(txn.AmountInDefault, uc)
		if err != nil {
			return dto.TransactionResponse{}, fmt.Errorf("failed to translate transaction %s: %w", txn.TransactionID, err)
		}
		return dto.ToTransactionResponse(txn, uc.CurrencyCode, amountInDefault), nil
	}
	return dto.TransactionResponse{}, fmt.Errorf("%w: transaction %s references unknown user currency %s", apperrors.ErrInconsistentData, txn.TransactionID, txn.UserCurrencyID)
}

// ListTransactions retrieves the user's transactions with the default-currency
// amount translated per row through the owning entry's exchange rate.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string) ([]dto.TransactionResponse, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if len(transactions) == 0 {
		return []dto.TransactionResponse{}, nil
	}

	userCurrencies, err := s.currencyService.ListUserCurrencies(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.UserCurrency, len(userCurrencies))
	for _, uc := range userCurrencies {
		byID[uc.UserCurrencyID] = uc
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i, txn := range transactions {
		uc, ok := byID[txn.UserCurrencyID]
		if !ok {
			return nil, fmt.Errorf("%w: transaction %s references unknown user currency %s", apperrors.ErrInconsistentData, txn.TransactionID, txn.UserCurrencyID)
		}
		amountInDefault, err := conversion.AmountInDefault(txn.AmountInDefault, uc)
		if err != nil {
			return nil, fmt.Errorf("failed to translate transaction %s: %w", txn.TransactionID, err)
		}
		responses[i] = dto.ToTransactionResponse(&txn, uc.CurrencyCode, amountInDefault)
	}
	return responses, nil
}
