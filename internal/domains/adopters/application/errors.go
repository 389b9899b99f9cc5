package application

import (
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var (
	// ErrCurrentPasswordRequired rejects a password rotation without the old password.
	ErrCurrentPasswordRequired = errors.New("current password is required to set a new password")
	// ErrCurrentPasswordMismatch rejects a password rotation with the wrong old password.
	ErrCurrentPasswordMismatch = errors.New("current password is incorrect")
)

func mapError(err error) error {
	if err == nil || errkind.Classified(err) {
		return err
	}
	if errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyFullName) ||
		errors.Is(err, domain.ErrEmptyContact) ||
		errors.Is(err, domain.ErrWeakPassword) ||
		errors.Is(err, domain.ErrInvalidHousing) ||
		errors.Is(err, domain.ErrInvalidExperience) ||
		errors.Is(err, ErrCurrentPasswordRequired) ||
		errors.Is(err, ErrCurrentPasswordMismatch) {
		return errkind.Wrap(errkind.ErrValidation, err)
	}
	return errkind.Store(err)
}
