// Package errkind classifies failures into the small set of kinds the
// transport layer knows how to render.
package errkind

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or availability clash.
	ErrConflict = errors.New("conflict")
	// ErrInvalidTransition marks a state-machine precondition failure.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrAuth marks bad credentials or a bad, expired, or revoked token.
	ErrAuth = errors.New("authentication failed")
	// ErrForbidden marks a principal that is authenticated but not allowed.
	ErrForbidden = errors.New("forbidden")
	// ErrStore marks an unexpected persistence failure.
	ErrStore = errors.New("store failure")
)

var kinds = []error{ErrValidation, ErrNotFound, ErrConflict, ErrInvalidTransition, ErrAuth, ErrForbidden, ErrStore}

// Of returns the kind carried by err, or nil when err is unclassified.
func Of(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Classified reports whether err already carries a kind.
func Classified(err error) bool {
	return Of(err) != nil
}

// Wrap tags err with kind unless it is nil.
func Wrap(kind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// Store tags unclassified errors as store failures and leaves the rest untouched.
func Store(err error) error {
	if err == nil || Classified(err) {
		return err
	}
	return Wrap(ErrStore, err)
}

// Message returns the text of err without the kind prefix added by Wrap.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if kind := Of(err); kind != nil {
		msg = strings.TrimPrefix(msg, kind.Error()+": ")
	}
	return msg
}

var names = map[error]string{
	ErrValidation:        "Validation",
	ErrNotFound:          "NotFound",
	ErrConflict:          "Conflict",
	ErrInvalidTransition: "InvalidTransition",
	ErrAuth:              "Auth",
	ErrForbidden:         "Forbidden",
	ErrStore:             "Store",
}

// Name returns a stable identifier for the kind of err, used when errors cross
// a serialization boundary. Unclassified errors report "".
func Name(err error) string {
	return names[Of(err)]
}

// FromName rebuilds a classified error from a Name and its message.
func FromName(name, message string) error {
	for kind, n := range names {
		if n == name {
			return Wrap(kind, errors.New(message))
		}
	}
	return errors.New(message)
}
