package validators

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the root of every validation failure. Input rejected with
// an error matching it is never sent to the backend.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = fmt.Errorf("%w: username is required", ErrValidation)
	ErrInvalidUsername  = fmt.Errorf("%w: username must be 3-30 letters, digits, '.', '-' or '_'", ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: email is invalid", ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password is required", ErrValidation)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most 72 bytes", ErrValidation)
	ErrEmptyIdentity    = fmt.Errorf("%w: username or email is required", ErrValidation)
	ErrNameTooLong      = fmt.Errorf("%w: name must be at most 100 characters", ErrValidation)
	ErrEmptyTitle       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrTitleTooLong     = fmt.Errorf("%w: title must be at most 200 characters", ErrValidation)
	ErrEmptyContent     = fmt.Errorf("%w: content is required", ErrValidation)
	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided for update", ErrValidation)
)

var knownErrors = []error{
	ErrEmptyUsername, ErrInvalidUsername, ErrEmptyEmail, ErrInvalidEmail,
	ErrEmptyPassword, ErrPasswordTooLong, ErrEmptyIdentity, ErrNameTooLong,
	ErrEmptyTitle, ErrTitleTooLong, ErrEmptyContent, ErrNoFieldsToUpdate,
}

// FromMessage returns the validation error whose text equals msg, or nil.
// The server writes these texts verbatim into 400 responses.
func FromMessage(msg string) error {
	for _, known := range knownErrors {
		if known.Error() == msg {
			return known
		}
	}
	return nil
}

// Message returns the text of the validation error in err's chain without the
// common prefix, or an empty string when err is not a validation error.
func Message(err error) string {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return trimPrefix(known)
		}
	}
	if errors.Is(err, ErrValidation) {
		return trimPrefix(err)
	}
	return ""
}

func trimPrefix(err error) string {
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}
