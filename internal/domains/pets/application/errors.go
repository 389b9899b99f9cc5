package application

import (
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

func mapError(err error) error {
	if err == nil || errkind.Classified(err) {
		return err
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptySpecies) ||
		errors.Is(err, domain.ErrInvalidAge) ||
		errors.Is(err, domain.ErrInvalidGender) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrArrivalImmutable) {
		return errkind.Wrap(errkind.ErrValidation, err)
	}
	if errors.Is(err, domain.ErrStatusManagedElsewhere) {
		return errkind.Wrap(errkind.ErrInvalidTransition, err)
	}
	return errkind.Store(err)
}
