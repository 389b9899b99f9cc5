package application

import (
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

func mapError(err error) error {
	if err == nil || errkind.Classified(err) {
		return err
	}
	if errors.Is(err, domain.ErrMissingTokenID) || errors.Is(err, domain.ErrMissingExpiry) {
		return errkind.Wrap(errkind.ErrAuth, err)
	}
	return errkind.Store(err)
}
