package application

import (
	"context"
	"errors"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// resolver joins adoptions with pet and adopter summaries, memoising lookups
// for the lifetime of one call.
type resolver struct {
	pets     ports.PetDirectory
	adopters ports.AdopterDirectory
	petCache map[int64]domain.PetSummary
	adCache  map[int64]domain.AdopterSummary
}

func newResolver(pets ports.PetDirectory, adopters ports.AdopterDirectory) *resolver {
	return &resolver{
		pets:     pets,
		adopters: adopters,
		petCache: map[int64]domain.PetSummary{},
		adCache:  map[int64]domain.AdopterSummary{},
	}
}

func (r *resolver) view(ctx context.Context, a *domain.Adoption) (domain.View, error) {
	pet, err := r.pet(ctx, a.PetID)
	if err != nil {
		return domain.View{}, err
	}
	adopter, err := r.adopter(ctx, a.AdopterID)
	if err != nil {
		return domain.View{}, err
	}
	return domain.View{Adoption: a, Pet: pet, Adopter: adopter}, nil
}

func (r *resolver) pet(ctx context.Context, id int64) (domain.PetSummary, error) {
	if cached, ok := r.petCache[id]; ok {
		return cached, nil
	}
	summary := domain.PetSummary{ID: id}
	if r.pets != nil {
		found, err := r.pets.PetSummary(ctx, id)
		if err != nil && !errors.Is(err, errkind.ErrNotFound) {
			return summary, err
		}
		if err == nil {
			summary = found
		}
	}
	r.petCache[id] = summary
	return summary, nil
}

func (r *resolver) adopter(ctx context.Context, id int64) (domain.AdopterSummary, error) {
	if cached, ok := r.adCache[id]; ok {
		return cached, nil
	}
	summary := domain.AdopterSummary{ID: id}
	if r.adopters != nil {
		found, err := r.adopters.AdopterSummary(ctx, id)
		if err != nil && !errors.Is(err, errkind.ErrNotFound) {
			return summary, err
		}
		if err == nil {
			summary = found
		}
	}
	r.adCache[id] = summary
	return summary, nil
}
