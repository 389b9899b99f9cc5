package ports

import (
	"context"

	"github.com/Apurer/pet-adoption-center/internal/domains/dashboard/domain"
)

// Service exposes the staff dashboard reads.
type Service interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	Activity(ctx context.Context) (*domain.Activity, error)
}
