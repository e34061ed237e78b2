package services

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Client-facing sentinel errors. The error text is the exact message returned
// on the wire, so it is capitalized like the responses it produces.
var (
	// ErrCreatorExists is returned when registering an email that is
	// already taken. Unlike login failures this message is specific on
	// purpose: at registration time the caller already knows the email.
	ErrCreatorExists = errors.New("Creator already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a login attempt cannot reveal whether an email
	// is registered.
	ErrInvalidCredentials = errors.New("Invalid Credentials")
)

// ValidationError carries the per-field messages of a failed input validation.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// Messages returns the field messages in a stable order for the response body.
func (e *ValidationError) Messages() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name].Error())
	}
	return msgs
}

// asValidationError wraps the error ozzo-validation returns into a
// ValidationError, passing anything else through untouched.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		return &ValidationError{Fields: fields}
	}
	return err
}
