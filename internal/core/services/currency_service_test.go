package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/preqsy/monetra-server/internal/apperrors"
	"github.com/preqsy/monetra-server/internal/core/conversion"
	"github.com/preqsy/monetra-server/internal/core/domain"
	portssvc "github.com/preqsy/monetra-server/internal/core/ports/services"
	"github.com/preqsy/monetra-server/internal/core/services"
	"github.com/preqsy/monetra-server/internal/dto"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock UserCurrencyRepository ---
type MockUserCurrencyRepository struct {
	mock.Mock
}

func (m *MockUserCurrencyRepository) ListUserCurrencies(ctx context.Context, userID string) ([]domain.UserCurrency, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCurrency), args.Error(1)
}

func (m *MockUserCurrencyRepository) FindUserCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.UserCurrency, error) {
	args := m.Called(ctx, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCurrency), args.Error(1)
}

func (m *MockUserCurrencyRepository) SaveUserCurrency(ctx context.Context, userCurrency domain.UserCurrency) error {
	args := m.Called(ctx, userCurrency)
	return args.Error(0)
}

func (m *MockUserCurrencyRepository) ReplaceUserCurrencies(ctx context.Context, userID string, currencies []domain.UserCurrency, amountsInDefault map[string]int64) error {
	args := m.Called(ctx, userID, currencies, amountsInDefault)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock ExchangeRateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) LatestRates(ctx context.Context, baseCurrencyCode string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, baseCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo     *MockCurrencyRepository
	mockUserCurrencyRepo *MockUserCurrencyRepository
	mockTransactionRepo  *MockTransactionRepository
	mockRateProvider     *MockRateProvider
	service              portssvc.CurrencySvcFacade

	userID string
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockUserCurrencyRepo = new(MockUserCurrencyRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockRateProvider = new(MockRateProvider)

	suite.service = services.NewCurrencyService(
		suite.mockCurrencyRepo,
		suite.mockUserCurrencyRepo,
		suite.mockTransactionRepo,
		suite.mockRateProvider,
	)
	suite.userID = uuid.NewString()
}

func (suite *CurrencyServiceTestSuite) referenceCurrency(code string) *domain.Currency {
	return &domain.Currency{CurrencyCode: code, Name: code, Symbol: code, Decimals: 2}
}

func (suite *CurrencyServiceTestSuite) userCurrency(code, rate string, isDefault bool) domain.UserCurrency {
	return domain.UserCurrency{
		UserCurrencyID: uuid.NewString(),
		UserID:         suite.userID,
		CurrencyCode:   code,
		ExchangeRate:   decimal.RequireFromString(rate),
		IsDefault:      isDefault,
	}
}

// --- GetCurrencyByCode ---

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_LowercaseInput() {
	ctx := context.Background()
	expected := suite.referenceCurrency("USD")

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "usd")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_InvalidLength() {
	ctx := context.Background()

	currency, err := suite.service.GetCurrencyByCode(ctx, "EURO")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode")
}

// --- GetUserCurrency ---

func (suite *CurrencyServiceTestSuite) TestGetUserCurrency_ExplicitSelection() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)
	usd := suite.userCurrency("USD", "0.0007", false)

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn, usd}, nil).Once()

	selected, def, err := suite.service.GetUserCurrency(ctx, suite.userID, usd.UserCurrencyID)

	suite.Require().NoError(err)
	suite.Equal(usd.UserCurrencyID, selected.UserCurrencyID)
	suite.Equal(ngn.UserCurrencyID, def.UserCurrencyID)
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetUserCurrency_UnmatchedFallsBackToDefault() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn}, nil).Once()

	selected, def, err := suite.service.GetUserCurrency(ctx, suite.userID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(ngn.UserCurrencyID, selected.UserCurrencyID)
	suite.Equal(ngn.UserCurrencyID, def.UserCurrencyID)
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetUserCurrency_NoCurrencies() {
	ctx := context.Background()

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{}, nil).Once()

	_, _, err := suite.service.GetUserCurrency(ctx, suite.userID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, conversion.ErrNoCurrencies)
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

// --- AddUserCurrency ---

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_FirstBecomesDefault() {
	ctx := context.Background()
	req := dto.AddUserCurrencyRequest{CurrencyCode: "NGN"}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "NGN").
		Return(suite.referenceCurrency("NGN"), nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{}, nil).Once()
	suite.mockUserCurrencyRepo.On("SaveUserCurrency", ctx, mock.MatchedBy(func(uc domain.UserCurrency) bool {
		return uc.CurrencyCode == "NGN" && uc.IsDefault && uc.ExchangeRate.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.True(entry.IsDefault)
	suite.True(entry.ExchangeRate.Equal(decimal.NewFromInt(1)))
	suite.mockRateProvider.AssertNotCalled(suite.T(), "LatestRates")
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_UnknownCode() {
	ctx := context.Background()
	req := dto.AddUserCurrencyRequest{CurrencyCode: "XXX"}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.AddUserCurrencyRequest{CurrencyCode: "USD"}
	existing := []domain.UserCurrency{
		suite.userCurrency("NGN", "1", true),
		suite.userCurrency("USD", "0.0007", false),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(suite.referenceCurrency("USD"), nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return(existing, nil).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserCurrencyRepo.AssertNotCalled(suite.T(), "SaveUserCurrency")
}

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_RequestedRate() {
	ctx := context.Background()
	rate := decimal.RequireFromString("0.0008")
	req := dto.AddUserCurrencyRequest{CurrencyCode: "USD", ExchangeRate: &rate}
	existing := []domain.UserCurrency{suite.userCurrency("NGN", "1", true)}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(suite.referenceCurrency("USD"), nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return(existing, nil).Once()
	suite.mockUserCurrencyRepo.On("SaveUserCurrency", ctx, mock.MatchedBy(func(uc domain.UserCurrency) bool {
		return uc.CurrencyCode == "USD" && !uc.IsDefault && uc.ExchangeRate.Equal(rate)
	})).Return(nil).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.True(entry.ExchangeRate.Equal(rate))
	suite.mockRateProvider.AssertNotCalled(suite.T(), "LatestRates")
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_NonPositiveRate() {
	ctx := context.Background()
	rate := decimal.Zero
	req := dto.AddUserCurrencyRequest{CurrencyCode: "USD", ExchangeRate: &rate}
	existing := []domain.UserCurrency{suite.userCurrency("NGN", "1", true)}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(suite.referenceCurrency("USD"), nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return(existing, nil).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserCurrencyRepo.AssertNotCalled(suite.T(), "SaveUserCurrency")
}

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_MarketQuote() {
	ctx := context.Background()
	req := dto.AddUserCurrencyRequest{CurrencyCode: "USD"}
	existing := []domain.UserCurrency{suite.userCurrency("NGN", "1", true)}
	quote := decimal.RequireFromString("0.0007")

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(suite.referenceCurrency("USD"), nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return(existing, nil).Once()
	suite.mockRateProvider.On("LatestRates", ctx, "NGN").
		Return(map[string]decimal.Decimal{"USD": quote}, nil).Once()
	suite.mockUserCurrencyRepo.On("SaveUserCurrency", ctx, mock.MatchedBy(func(uc domain.UserCurrency) bool {
		return uc.CurrencyCode == "USD" && uc.ExchangeRate.Equal(quote)
	})).Return(nil).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(entry.ExchangeRate.Equal(quote))
	suite.mockRateProvider.AssertExpectations(suite.T())
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_MissingQuoteFallsBackToOne() {
	ctx := context.Background()
	req := dto.AddUserCurrencyRequest{CurrencyCode: "USD"}
	existing := []domain.UserCurrency{suite.userCurrency("NGN", "1", true)}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(suite.referenceCurrency("USD"), nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return(existing, nil).Once()
	suite.mockRateProvider.On("LatestRates", ctx, "NGN").
		Return(map[string]decimal.Decimal{}, nil).Once()
	suite.mockUserCurrencyRepo.On("SaveUserCurrency", ctx, mock.MatchedBy(func(uc domain.UserCurrency) bool {
		return uc.ExchangeRate.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(entry.ExchangeRate.Equal(decimal.NewFromInt(1)))
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddUserCurrency_NewDefaultTriggersRebase() {
	ctx := context.Background()
	rate := decimal.RequireFromString("0.5")
	req := dto.AddUserCurrencyRequest{CurrencyCode: "USD", ExchangeRate: &rate, IsDefault: true}
	ngn := suite.userCurrency("NGN", "1", true)

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(suite.referenceCurrency("USD"), nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn}, nil).Once()
	suite.mockUserCurrencyRepo.On("SaveUserCurrency", ctx, mock.AnythingOfType("domain.UserCurrency")).
		Return(nil).Once()
	suite.mockTransactionRepo.On("ListTransactions", ctx, suite.userID).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockUserCurrencyRepo.On("ReplaceUserCurrencies", ctx, suite.userID,
		mock.MatchedBy(func(ucs []domain.UserCurrency) bool {
			if len(ucs) != 2 {
				return false
			}
			for _, uc := range ucs {
				switch uc.CurrencyCode {
				case "NGN":
					// Dividing every rate by 0.5 makes NGN worth 2 per USD.
					if uc.IsDefault || !uc.ExchangeRate.Equal(decimal.NewFromInt(2)) {
						return false
					}
				case "USD":
					if !uc.IsDefault || !uc.ExchangeRate.Equal(decimal.NewFromInt(1)) {
						return false
					}
				default:
					return false
				}
			}
			return true
		}),
		map[string]int64{},
	).Return(nil).Once()

	entry, err := suite.service.AddUserCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.True(entry.IsDefault)
	suite.True(entry.ExchangeRate.Equal(decimal.NewFromInt(1)))
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

// --- SetDefaultCurrency ---

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency_RebasesRatesAndAmounts() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)
	usd := suite.userCurrency("USD", "0.5", false)
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		UserID:         suite.userID,
		UserCurrencyID: ngn.UserCurrencyID,
		Amount:         1000,
	}

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn, usd}, nil).Once()
	suite.mockTransactionRepo.On("ListTransactions", ctx, suite.userID).
		Return([]domain.Transaction{txn}, nil).Once()
	suite.mockUserCurrencyRepo.On("ReplaceUserCurrencies", ctx, suite.userID,
		mock.MatchedBy(func(ucs []domain.UserCurrency) bool {
			if len(ucs) != 2 {
				return false
			}
			for _, uc := range ucs {
				switch uc.UserCurrencyID {
				case ngn.UserCurrencyID:
					if uc.IsDefault || !uc.ExchangeRate.Equal(decimal.NewFromInt(2)) {
						return false
					}
				case usd.UserCurrencyID:
					if !uc.IsDefault || !uc.ExchangeRate.Equal(decimal.NewFromInt(1)) {
						return false
					}
				default:
					return false
				}
			}
			return true
		}),
		// The stored default amount stays the transaction's own minor units;
		// the rebased rates alone move the reported value.
		map[string]int64{txn.TransactionID: 1000},
	).Return(nil).Once()

	updated, err := suite.service.SetDefaultCurrency(ctx, suite.userID, usd.UserCurrencyID)

	suite.Require().NoError(err)
	suite.Len(updated, 2)
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency_ReadReflectsNewDefault() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)
	usd := suite.userCurrency("USD", "0.5", false)
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          suite.userID,
		UserCurrencyID:  ngn.UserCurrencyID,
		Amount:          1000,
		AmountInDefault: 1000,
	}

	codec := conversion.NewCodec(conversion.NewDecimalTableFromMap(map[string]int{
		"NGN": 2,
		"USD": 2,
	}))
	transactionService := services.NewTransactionService(suite.mockTransactionRepo, suite.service, codec)

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn, usd}, nil).Once()
	suite.mockTransactionRepo.On("ListTransactions", ctx, suite.userID).
		Return([]domain.Transaction{txn}, nil).Once()

	var rebased []domain.UserCurrency
	var stored map[string]int64
	suite.mockUserCurrencyRepo.On("ReplaceUserCurrencies", ctx, suite.userID, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			rebased = args.Get(2).([]domain.UserCurrency)
			stored = args.Get(3).(map[string]int64)
		}).Return(nil).Once()

	_, err := suite.service.SetDefaultCurrency(ctx, suite.userID, usd.UserCurrencyID)
	suite.Require().NoError(err)
	suite.Equal(int64(1000), stored[txn.TransactionID])

	persisted := txn
	persisted.AmountInDefault = stored[txn.TransactionID]
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.userID, txn.TransactionID).
		Return(&persisted, nil).Once()
	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return(rebased, nil).Once()

	resp, err := transactionService.GetTransactionByID(ctx, suite.userID, txn.TransactionID)

	suite.Require().NoError(err)
	// 1000 minor NGN at the rebased NGN rate of 2 reads as 500.00 of the new
	// USD default.
	suite.Equal("500.00", resp.AmountInDefault)
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency_AlreadyDefaultIsNoOp() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)
	usd := suite.userCurrency("USD", "0.5", false)

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn, usd}, nil).Once()

	updated, err := suite.service.SetDefaultCurrency(ctx, suite.userID, ngn.UserCurrencyID)

	suite.Require().NoError(err)
	suite.Len(updated, 2)
	suite.mockUserCurrencyRepo.AssertNotCalled(suite.T(), "ReplaceUserCurrencies")
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency_NotFound() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn}, nil).Once()

	updated, err := suite.service.SetDefaultCurrency(ctx, suite.userID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- RefreshExchangeRates ---

func (suite *CurrencyServiceTestSuite) TestRefreshExchangeRates_UpdatesNonDefaultRates() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)
	usd := suite.userCurrency("USD", "0.0007", false)
	newQuote := decimal.RequireFromString("0.00065")

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn, usd}, nil).Once()
	suite.mockRateProvider.On("LatestRates", ctx, "NGN").
		Return(map[string]decimal.Decimal{"NGN": decimal.NewFromInt(1), "USD": newQuote}, nil).Once()
	suite.mockTransactionRepo.On("ListTransactions", ctx, suite.userID).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockUserCurrencyRepo.On("ReplaceUserCurrencies", ctx, suite.userID,
		mock.MatchedBy(func(ucs []domain.UserCurrency) bool {
			for _, uc := range ucs {
				if uc.UserCurrencyID == ngn.UserCurrencyID && !uc.ExchangeRate.Equal(decimal.NewFromInt(1)) {
					return false
				}
				if uc.UserCurrencyID == usd.UserCurrencyID && !uc.ExchangeRate.Equal(newQuote) {
					return false
				}
			}
			return len(ucs) == 2
		}),
		map[string]int64{},
	).Return(nil).Once()

	updated, err := suite.service.RefreshExchangeRates(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(updated, 2)
	suite.mockRateProvider.AssertExpectations(suite.T())
	suite.mockUserCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestRefreshExchangeRates_NoCurrencies() {
	ctx := context.Background()

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{}, nil).Once()

	updated, err := suite.service.RefreshExchangeRates(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, conversion.ErrNoCurrencies)
	suite.mockRateProvider.AssertNotCalled(suite.T(), "LatestRates")
}

func (suite *CurrencyServiceTestSuite) TestRefreshExchangeRates_ProviderError() {
	ctx := context.Background()
	ngn := suite.userCurrency("NGN", "1", true)
	expectedErr := assert.AnError

	suite.mockUserCurrencyRepo.On("ListUserCurrencies", ctx, suite.userID).
		Return([]domain.UserCurrency{ngn}, nil).Once()
	suite.mockRateProvider.On("LatestRates", ctx, "NGN").
		Return(nil, expectedErr).Once()

	updated, err := suite.service.RefreshExchangeRates(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserCurrencyRepo.AssertNotCalled(suite.T(), "ReplaceUserCurrencies")
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
