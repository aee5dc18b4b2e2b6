// Package apperr holds the typed failures returned by the catalog engine.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindInvalidAggregate Kind = "INVALID_AGGREGATE"
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindConflict         Kind = "CONFLICT"
)

// Entity names used with NotFound.
const (
	EntityCategory = "Category"
	EntityProduct  = "Product"
)

type Error struct {
	Kind    Kind
	Entity  string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: entity + " not found"}
}

func InvalidAggregate(reason string) *Error {
	return &Error{Kind: KindInvalidAggregate, Message: reason}
}

func ValidationFailed(message string, details any) *Error {
	return &Error{Kind: KindValidationFailed, Message: message, Details: details}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// As returns the typed failure carried by err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

func IsNotFound(err error, entity string) bool {
	e, ok := As(err)
	return ok && e.Kind == KindNotFound && e.Entity == entity
}

// HTTPStatus maps err to a transport status; untyped errors are internal.
func HTTPStatus(err error) int {
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidAggregate:
		return http.StatusUnprocessableEntity
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
