package usecase

import (
	"errors"

	"azmedical/internal/validator"
)

var (
	// ErrCartEmpty — checkout is unreachable without lines in the cart.
	ErrCartEmpty = errors.New("cart empty")
	// ErrUnauthorized — the operation needs an active session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPaymentRejected — the payment port refused; only an injected
	// failure hook or a canceled context produces this.
	ErrPaymentRejected = errors.New("payment rejected")
	// ErrAuthRejected — the authenticator refused; same sources as above.
	ErrAuthRejected = errors.New("authentication rejected")
)

// ValidationError carries per-field failures for inline display. It never
// accompanies a store mutation.
type ValidationError struct {
	Fields validator.FieldErrors
}

func (e *ValidationError) Error() string { return "validation error" }

// AsValidationError unwraps err into a ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
