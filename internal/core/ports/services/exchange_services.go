package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeSvcFacade defines the currency conversion operations exposed to the
// HTTP layer.
type ExchangeSvcFacade interface {
	// Convert converts amount from one currency to another using the fixed
	// rate table. The result is rounded to 2 fractional digits, except when
	// from and to are the same code, in which case the amount is returned
	// unchanged. Returns *apperrors.UnknownCurrencyError when a code is
	// absent from the table.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// InfoSvcFacade exposes read-only application metadata.
type InfoSvcFacade interface {
	// Version returns the application version string fixed at startup.
	Version() string
}
