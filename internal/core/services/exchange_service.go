package services

import (
	"context"

	"github.com/fxcalc/currency-calculator-api/internal/apperrors"
	"github.com/fxcalc/currency-calculator-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeService converts amounts between currencies using a rate table
// injected at construction. The table is immutable, so the service is safe
// for concurrent use without coordination.
type ExchangeService struct {
	rates *domain.RateTable
}

// NewExchangeService creates an ExchangeService backed by the given table.
func NewExchangeService(rates *domain.RateTable) *ExchangeService {
	return &ExchangeService{rates: rates}
}

// Convert converts amount from one currency to another. The amount is first
// multiplied into the base currency and then divided by the target rate,
// rounded to 2 fractional digits with exact halves rounded away from zero.
// All arithmetic is decimal; float64 never enters the computation.
func (s *ExchangeService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	// Identity conversions short-circuit before any lookup, so a code absent
	// from the table still converts to itself. The amount passes through
	// unrounded on this path.
	if from == to {
		return amount, nil
	}

	// Codes are matched exactly as provided; from is checked before to, and
	// the first missing code is the one reported.
	rateFrom, ok := s.rates.Rate(from)
	if !ok {
		return decimal.Decimal{}, &apperrors.UnknownCurrencyError{Code: from}
	}
	rateTo, ok := s.rates.Rate(to)
	if !ok {
		return decimal.Decimal{}, &apperrors.UnknownCurrencyError{Code: to}
	}

	return amount.Mul(rateFrom).DivRound(rateTo, 2), nil
}
