package application

import (
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

func mapError(err error) error {
	if err == nil || errkind.Classified(err) {
		return err
	}
	if errors.Is(err, domain.ErrMissingAdopter) || errors.Is(err, domain.ErrMissingPet) {
		return errkind.Wrap(errkind.ErrValidation, err)
	}
	return errkind.Store(err)
}
