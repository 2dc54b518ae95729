package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// UnknownCurrencyError indicates that a currency code is absent from the rate
// table. It is the only domain error the conversion path can produce and is
// translated to a 400 response at the HTTP boundary.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return "unknown currency:" + e.Code
}
