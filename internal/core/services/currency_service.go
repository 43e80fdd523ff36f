package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/preqsy/monetra-server/internal/apperrors"
	"github.com/preqsy/monetra-server/internal/core/conversion"
	"github.com/preqsy/monetra-server/internal/core/domain"
	portsprov "github.com/preqsy/monetra-server/internal/core/ports/providers"
	portsrepo "github.com/preqsy/monetra-server/internal/core/ports/repositories"
	"github.com/preqsy/monetra-server/internal/dto"
)

// CurrencyService provides business logic for currency reference data and the
// per-user currency sets, including default-currency changes. All numeric work
// is delegated to the conversion package; this service owns validation,
// orchestration and persistence.
type CurrencyService struct {
	currencyRepo     portsrepo.CurrencyRepositoryFacade
	userCurrencyRepo portsrepo.UserCurrencyRepositoryFacade
	transactionRepo  portsrepo.TransactionRepositoryFacade
	rateProvider     portsprov.ExchangeRateProvider
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	userCurrencyRepo portsrepo.UserCurrencyRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	rateProvider portsprov.ExchangeRateProvider,
) *CurrencyService {
	return &CurrencyService{
		currencyRepo:     currencyRepo,
		userCurrencyRepo: userCurrencyRepo,
		transactionRepo:  transactionRepo,
		rateProvider:     rateProvider,
	}
}

// GetCurrencyByCode retrieves a reference currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all reference currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ListUserCurrencies retrieves the user's full currency set.
func (s *CurrencyService) ListUserCurrencies(ctx context.Context, userID string) ([]domain.UserCurrency, error) {
	userCurrencies, err := s.userCurrencyRepo.ListUserCurrencies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user currencies in service: %w", err)
	}
	if userCurrencies == nil {
		return []domain.UserCurrency{}, nil
	}
	return userCurrencies, nil
}

// GetUserCurrency resolves the currency entry a single operation should use,
// together with the user's default entry.
func (s *CurrencyService) GetUserCurrency(ctx context.Context, userID, requestedID string) (domain.UserCurrency, domain.UserCurrency, error) {
	userCurrencies, err := s.userCurrencyRepo.ListUserCurrencies(ctx, userID)
	if err != nil {
		return domain.UserCurrency{}, domain.UserCurrency{}, fmt.Errorf("failed to load user currencies: %w", err)
	}

	selected, def, err := conversion.Resolve(userCurrencies, requestedID)
	if err != nil {
		return domain.UserCurrency{}, domain.UserCurrency{}, fmt.Errorf("failed to resolve user currency: %w", err)
	}
	return selected, def, nil
}

// AddUserCurrency subscribes the user to a currency. The first currency a user
// adds always becomes the default with a rate of 1; later additions get their
// rate from the request or from the market quote relative to the current
// default, and trigger a full rebase when flagged default.
func (s *CurrencyService) AddUserCurrency(ctx context.Context, userID string, req dto.AddUserCurrencyRequest) (*domain.UserCurrency, error) {
	currencyCode := strings.ToUpper(req.CurrencyCode)

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency '%s' not found", apperrors.ErrValidation, currencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", currencyCode, err)
	}

	existing, err := s.userCurrencyRepo.ListUserCurrencies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user currencies: %w", err)
	}
	for _, uc := range existing {
		if uc.CurrencyCode == currencyCode {
			return nil, fmt.Errorf("%w: currency '%s' already added", apperrors.ErrDuplicate, currencyCode)
		}
	}

	now := time.Now()
	newEntry := domain.UserCurrency{
		UserCurrencyID: uuid.NewString(),
		UserID:         userID,
		CurrencyCode:   currency.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if len(existing) == 0 {
		// The first currency is the base everything else is priced against.
		newEntry.ExchangeRate = decimal.NewFromInt(1)
		newEntry.IsDefault = true
		if err := s.userCurrencyRepo.SaveUserCurrency(ctx, newEntry); err != nil {
			return nil, fmt.Errorf("failed to save user currency: %w", err)
		}
		return &newEntry, nil
	}

	rate, err := s.rateForNewEntry(ctx, existing, currencyCode, req.ExchangeRate)
	if err != nil {
		return nil, err
	}
	newEntry.ExchangeRate = rate

	if err := s.userCurrencyRepo.SaveUserCurrency(ctx, newEntry); err != nil {
		return nil, fmt.Errorf("failed to save user currency: %w", err)
	}

	if req.IsDefault {
		updated, err := s.rebaseOnto(ctx, userID, append(existing, newEntry), currencyCode)
		if err != nil {
			return nil, err
		}
		for i := range updated {
			if updated[i].UserCurrencyID == newEntry.UserCurrencyID {
				return &updated[i], nil
			}
		}
	}
	return &newEntry, nil
}

// SetDefaultCurrency rebases the user's whole currency set onto the entry
// identified by userCurrencyID. Setting the current default again is a no-op.
func (s *CurrencyService) SetDefaultCurrency(ctx context.Context, userID, userCurrencyID string) ([]domain.UserCurrency, error) {
	userCurrencies, err := s.userCurrencyRepo.ListUserCurrencies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user currencies: %w", err)
	}

	var selected *domain.UserCurrency
	for i := range userCurrencies {
		if userCurrencies[i].UserCurrencyID == userCurrencyID {
			selected = &userCurrencies[i]
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("%w: user currency '%s'", apperrors.ErrNotFound, userCurrencyID)
	}
	if selected.IsDefault {
		return userCurrencies, nil
	}

	return s.rebaseOnto(ctx, userID, userCurrencies, selected.CurrencyCode)
}

// RefreshExchangeRates replaces every non-default rate with the latest market
// quote relative to the user's default currency, then rewrites the
// denormalized transaction amounts in the same database transaction.
func (s *CurrencyService) RefreshExchangeRates(ctx context.Context, userID string) ([]domain.UserCurrency, error) {
	userCurrencies, err := s.userCurrencyRepo.ListUserCurrencies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user currencies: %w", err)
	}

	_, def, err := conversion.Resolve(userCurrencies, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default currency: %w", err)
	}

	quotes, err := s.rateProvider.LatestRates(ctx, def.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market rates: %w", err)
	}

	now := time.Now()
	updated := make([]domain.UserCurrency, len(userCurrencies))
	for i, uc := range userCurrencies {
		if !uc.IsDefault {
			if quote, ok := quotes[uc.CurrencyCode]; ok && quote.IsPositive() {
				uc.ExchangeRate = quote
				uc.LastUpdatedAt = now
				uc.LastUpdatedBy = userID
			}
		}
		updated[i] = uc
	}

	if err := s.persistCurrencySet(ctx, userID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// rateForNewEntry picks the default-relative rate for a currency being added:
// the client-supplied rate when present, otherwise the market quote relative
// to the current default, falling back to 1 when the provider has no quote.
func (s *CurrencyService) rateForNewEntry(ctx context.Context, existing []domain.UserCurrency, currencyCode string, requested *decimal.Decimal) (decimal.Decimal, error) {
	if requested != nil {
		if !requested.IsPositive() {
			return decimal.Decimal{}, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		return *requested, nil
	}

	_, def, err := conversion.Resolve(existing, "")
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to resolve default currency: %w", err)
	}

	quotes, err := s.rateProvider.LatestRates(ctx, def.CurrencyCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to fetch market rates: %w", err)
	}
	if quote, ok := quotes[currencyCode]; ok && quote.IsPositive() {
		return quote, nil
	}
	return decimal.NewFromInt(1), nil
}

// rebaseOnto runs the rebase algorithm and persists the full replacement set.
func (s *CurrencyService) rebaseOnto(ctx context.Context, userID string, userCurrencies []domain.UserCurrency, newDefaultCode string) ([]domain.UserCurrency, error) {
	updated, err := conversion.Rebase(userCurrencies, newDefaultCode)
	if err != nil {
		if errors.Is(err, conversion.ErrCurrencyNotFound) || errors.Is(err, conversion.ErrInvalidRate) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		return nil, fmt.Errorf("failed to rebase user currencies: %w", err)
	}

	now := time.Now()
	for i := range updated {
		updated[i].LastUpdatedAt = now
		updated[i].LastUpdatedBy = userID
	}

	if err := s.persistCurrencySet(ctx, userID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// persistCurrencySet writes the replacement currency rows and the
// transactions' stored default-currency amounts as one atomic replacement.
// The stored amount is kept equal to the transaction's own minor-unit amount;
// reads divide it by the owning entry's current rate, so replacing the rates
// is what moves every reported default-currency value.
func (s *CurrencyService) persistCurrencySet(ctx context.Context, userID string, updated []domain.UserCurrency) error {
	if _, _, err := conversion.Resolve(updated, ""); err != nil {
		return fmt.Errorf("%w: rebased set has no default", apperrors.ErrInconsistentData)
	}

	byID := make(map[string]domain.UserCurrency, len(updated))
	for _, uc := range updated {
		byID[uc.UserCurrencyID] = uc
	}

	transactions, err := s.transactionRepo.ListTransactions(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load transactions for replacement: %w", err)
	}

	amounts := make(map[string]int64, len(transactions))
	for _, txn := range transactions {
		if _, ok := byID[txn.UserCurrencyID]; !ok {
			return fmt.Errorf("%w: transaction %s references unknown user currency %s", apperrors.ErrInconsistentData, txn.TransactionID, txn.UserCurrencyID)
		}
		amounts[txn.TransactionID] = txn.Amount
	}

	if err := s.userCurrencyRepo.ReplaceUserCurrencies(ctx, userID, updated, amounts); err != nil {
		return fmt.Errorf("failed to persist rebased currency set: %w", err)
	}
	return nil
}
