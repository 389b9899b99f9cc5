package application

import (
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

func mapError(err error) error {
	if err == nil || errkind.Classified(err) {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrPetUnavailable):
		return errkind.Wrap(errkind.ErrConflict, err)
	case errors.Is(err, domain.ErrInvalidTransition):
		return errkind.Wrap(errkind.ErrInvalidTransition, err)
	case errors.Is(err, domain.ErrNegativeFee),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPeriod):
		return errkind.Wrap(errkind.ErrValidation, err)
	}
	return errkind.Store(err)
}
