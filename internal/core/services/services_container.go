package services

import (
	"github.com/fxcalc/currency-calculator-api/internal/core/domain"
	portssvc "github.com/fxcalc/currency-calculator-api/internal/core/ports/services"
	"github.com/fxcalc/currency-calculator-api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, rates *domain.RateTable) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Exchange = NewExchangeService(rates)
	container.Info = NewInfoService(cfg.AppVersion)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ExchangeSvcFacade = (*ExchangeService)(nil)
	_ portssvc.InfoSvcFacade     = (*InfoService)(nil)
)
