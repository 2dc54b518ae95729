package dto

import "github.com/shopspring/decimal"

// ExchangeRequest defines the body of a conversion request. No field carries
// binding validation: the amount may be negative or zero, and currency codes
// are forwarded to the conversion engine exactly as provided. Unknown codes
// are a domain concern, not a binding one.
type ExchangeRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
}
