package domain

import (
	"fmt"

	"github.com/fxcalc/currency-calculator-api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateTable is an immutable mapping from currency code to its exchange rate
// relative to the base currency. It is constructed once at startup and shared
// read-only across requests, so no locking is needed.
type RateTable struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewRateTable builds a RateTable from the given base currency and rate map.
// The base currency must be present with a rate of exactly 1, and every rate
// must be strictly positive. The input map is copied, so later mutation by the
// caller does not affect the table.
func NewRateTable(base string, rates map[string]decimal.Decimal) (*RateTable, error) {
	baseRate, ok := rates[base]
	if !ok {
		return nil, fmt.Errorf("%w: base currency %q missing from rate table", apperrors.ErrValidation, base)
	}
	if !baseRate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: base currency %q must have rate 1, got %s", apperrors.ErrValidation, base, baseRate)
	}

	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		if rate.Sign() <= 0 {
			return nil, fmt.Errorf("%w: rate for %q must be positive, got %s", apperrors.ErrValidation, code, rate)
		}
		copied[code] = rate
	}

	return &RateTable{base: base, rates: copied}, nil
}

// Rate returns the exchange rate for the given currency code. Codes are
// matched exactly as provided; no case normalization is performed.
func (t *RateTable) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := t.rates[code]
	return rate, ok
}

// BaseCurrency returns the code of the currency whose rate is 1.
func (t *RateTable) BaseCurrency() string {
	return t.base
}

// Currencies returns the codes known to the table.
func (t *RateTable) Currencies() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	return codes
}

// DefaultRateTable returns the fixed table the application ships with:
// PLN as the base currency, EUR at 4.00 and USD at 4.10.
func DefaultRateTable() *RateTable {
	table, err := NewRateTable("PLN", map[string]decimal.Decimal{
		"PLN": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("4.00"),
		"USD": decimal.RequireFromString("4.10"),
	})
	if err != nil {
		// The built-in table is statically valid; reaching this is a bug.
		panic(err)
	}
	return table
}
