package survey

import "errors"

// ValidationError marks a rejected input (missing username, wrong answer
// count, empty batch). Route handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string { return e.msg }

func errValidation(msg string) error { return ValidationError{msg} }

func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
