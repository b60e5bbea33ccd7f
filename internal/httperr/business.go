package httperr

import "errors"

// Error taxonomy. Every failure the booking service reports carries one of
// these codes; the HTTP layer maps each code to one fixed status and message.
const (
	CodeInvalidInput      = "invalid_input"
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeSlotNotAvailable  = "slot_not_available"
	CodeSlotAlreadyBooked = "slot_already_booked"
	CodeUnavailable       = "unavailable"
)

type BusinessError struct {
	Code    string
	Message string // optional override of the code's default message
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
