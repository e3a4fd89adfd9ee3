package service

import (
	"errors"
	"fmt"

	"tasktracker/internal/repository"
)

type Kind string

const (
	KindValidation      Kind = "validation"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
)

// Error is a request-scoped failure the transport layer can render as is.
// Fields holds per-field messages for validation and conflict errors.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(field, reason string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Invalid input.",
		Fields:  map[string][]string{field: {reason}},
	}
}

func NewNotFound(resource, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: "Not found.",
		Err:     fmt.Errorf("%s %s", resource, id),
	}
}

func NewForbidden() *Error {
	return &Error{
		Kind:    KindForbidden,
		Message: "You do not have permission to perform this action.",
	}
}

func NewUnauthenticated(message string) *Error {
	if message == "" {
		message = "Authentication credentials were not provided."
	}
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NewConflict(field, reason string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: reason,
		Fields:  map[string][]string{field: {reason}},
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// fromStore turns repository not-found sentinels into NotFound errors and
// wraps everything else.
func fromStore(err error, op, resource, id string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, repository.ErrTaskNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCommentNotFound):
		nf := NewNotFound(resource, id)
		nf.Err = fmt.Errorf("%s %s: %w", resource, id, err)
		return nf
	}
	return fmt.Errorf("%s: %w", op, err)
}
