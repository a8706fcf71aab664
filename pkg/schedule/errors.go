package schedule

import (
	"fmt"

	"github.com/nsyszr/festival/pkg/storage"
	"github.com/pkg/errors"
)

// ErrInvalidInput is the kind of errors caused by a missing argument
var ErrInvalidInput = errors.New("invalid input")

// Error is returned by all operations of the Service that fail because of the
// request. Kind is one of storage.ErrNotFound, storage.ErrAlreadyExists or
// ErrInvalidInput, Message is meant for the API client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Cause returns the error kind, see errors.Cause
func (e *Error) Cause() error {
	return e.Kind
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Extensions is added to the GraphQL error of a failed field
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": Code(e),
	}
}

// Code returns a machine readable code for err
func Code(err error) string {
	switch errors.Cause(err) {
	case storage.ErrNotFound:
		return "NOT_FOUND"
	case storage.ErrAlreadyExists:
		return "ALREADY_EXISTS"
	case ErrInvalidInput:
		return "INVALID_INPUT"
	default:
		return "INTERNAL"
	}
}

func notFound(entity, field, value string) error {
	return &Error{
		Kind:    storage.ErrNotFound,
		Message: fmt.Sprintf("No %s with %s %s in database.", entity, field, value),
	}
}

func alreadyExists(kind, name string) error {
	return &Error{
		Kind:    storage.ErrAlreadyExists,
		Message: fmt.Sprintf("%s: %s already exists in the database.", kind, name),
	}
}

func invalidInput(format string, args ...interface{}) error {
	return &Error{
		Kind:    ErrInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}

// translate turns storage errors into request errors, anything else is
// wrapped as an internal failure
func translate(err error, onNotFound, onExists func() error) error {
	switch err {
	case nil:
		return nil
	case storage.ErrNotFound:
		if onNotFound != nil {
			return onNotFound()
		}
	case storage.ErrAlreadyExists:
		if onExists != nil {
			return onExists()
		}
	}
	return errors.Wrap(err, "storage failure")
}
