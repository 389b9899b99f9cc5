package application

import (
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// ErrMissingCredentials rejects a login without email or password.
var ErrMissingCredentials = errors.New("email and password are required")

func mapError(err error) error {
	if err == nil || errkind.Classified(err) {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyFullName),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, ErrMissingCredentials):
		return errkind.Wrap(errkind.ErrValidation, err)
	case errors.Is(err, domain.ErrSelfDeactivation):
		return errkind.Wrap(errkind.ErrInvalidTransition, err)
	}
	return errkind.Store(err)
}
