package services

import (
	"github.com/preqsy/monetra-server/internal/core/conversion"
	portsprov "github.com/preqsy/monetra-server/internal/core/ports/providers"
	portsrepo "github.com/preqsy/monetra-server/internal/core/ports/repositories"
	portssvc "github.com/preqsy/monetra-server/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	rateProvider portsprov.ExchangeRateProvider,
	codec *conversion.Codec,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(
		repos.CurrencyRepo,
		repos.UserCurrencyRepo,
		repos.TransactionRepo,
		rateProvider,
	)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		container.Currency,
		codec,
	)

	return container
}

// Compile-time checks that the concrete services satisfy their facades.
var (
	_ portssvc.CurrencySvcFacade    = (*CurrencyService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
)
