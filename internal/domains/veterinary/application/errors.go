package application

import (
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var validationErrors = []error{
	domain.ErrMissingPet,
	domain.ErrMissingVisitDate,
	domain.ErrEmptyVeterinarian,
	domain.ErrInvalidVisitType,
	domain.ErrInvalidVitals,
	domain.ErrNegativeCost,
	domain.ErrNextVisitBeforeDate,
	domain.ErrMissingVisit,
	domain.ErrEmptyVaccineName,
	domain.ErrMissingAdministeredDate,
	domain.ErrInvalidVaccinationStatus,
	domain.ErrDueBeforeAdministered,
}

func mapError(err error) error {
	if err == nil || errkind.Classified(err) {
		return err
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return errkind.Wrap(errkind.ErrValidation, err)
		}
	}
	return errkind.Store(err)
}
