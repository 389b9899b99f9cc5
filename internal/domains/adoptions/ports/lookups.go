package ports

import (
	"context"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
)

// PetDirectory resolves pet summaries for adoption views.
type PetDirectory interface {
	PetSummary(ctx context.Context, id int64) (domain.PetSummary, error)
}

// AdopterDirectory resolves adopter summaries for adoption views and confirms adopters exist.
type AdopterDirectory interface {
	AdopterSummary(ctx context.Context, id int64) (domain.AdopterSummary, error)
}
