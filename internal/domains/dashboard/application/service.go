package application

import (
	"context"
	"sort"

	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	adoptionports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/domains/dashboard/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/dashboard/ports"
	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
	"github.com/Apurer/pet-adoption-center/internal/shared/projection"
)

// Service aggregates the other bounded contexts into dashboard reads.
type Service struct {
	pets      ports.PetSource
	adopters  ports.AdopterSource
	adoptions ports.AdoptionSource
	vet       ports.VeterinarySource
}

func NewService(pets ports.PetSource, adopters ports.AdopterSource, adoptions ports.AdoptionSource, vet ports.VeterinarySource) *Service {
	return &Service{pets: pets, adopters: adopters, adoptions: adoptions, vet: vet}
}

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	pets, err := s.pets.List(ctx, pettypes.ListPetsInput{})
	if err != nil {
		return nil, errkind.Store(err)
	}
	adopters, err := s.adopters.List(ctx)
	if err != nil {
		return nil, errkind.Store(err)
	}
	views, err := s.adoptions.List(ctx, adoptionports.ListInput{})
	if err != nil {
		return nil, errkind.Store(err)
	}
	counts, err := s.vet.Counts(ctx)
	if err != nil {
		return nil, errkind.Store(err)
	}
	adoptions := make([]*adoptiondomain.Adoption, 0, len(views))
	for _, v := range views {
		adoptions = append(adoptions, v.Adoption)
	}
	return &domain.Stats{
		Pets:         domain.TallyPets(projection.Entities(pets)),
		Adopters:     len(adopters),
		Adoptions:    domain.TallyAdoptions(adoptions),
		VetVisits:    counts.Visits,
		Vaccinations: domain.VaccinationStats{Total: counts.Vaccinations, Overdue: counts.Overdue},
	}, nil
}

// Activity returns the newest adoptions, catalogue entries and registrations.
func (s *Service) Activity(ctx context.Context) (*domain.Activity, error) {
	views, err := s.adoptions.List(ctx, adoptionports.ListInput{})
	if err != nil {
		return nil, errkind.Store(err)
	}
	pets, err := s.pets.List(ctx, pettypes.ListPetsInput{})
	if err != nil {
		return nil, errkind.Store(err)
	}
	adopters, err := s.adopters.List(ctx)
	if err != nil {
		return nil, errkind.Store(err)
	}

	recentPets := make([]domain.RecentPet, 0, len(pets))
	for _, p := range pets {
		if p == nil || p.Entity == nil {
			continue
		}
		recentPets = append(recentPets, domain.RecentPet{Pet: p.Entity, CreatedAt: p.Metadata.CreatedAt})
	}
	sort.SliceStable(recentPets, func(i, j int) bool {
		a, b := recentPets[i], recentPets[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Pet.ID > b.Pet.ID
	})

	recentAdopters := make([]domain.RecentAdopter, 0, len(adopters))
	for _, summary := range adopters {
		a := summary.Adopter
		if a == nil {
			continue
		}
		recentAdopters = append(recentAdopters, domain.RecentAdopter{ID: a.ID, Email: a.Email, FullName: a.FullName, CreatedAt: a.CreatedAt})
	}
	sort.SliceStable(recentAdopters, func(i, j int) bool {
		a, b := recentAdopters[i], recentAdopters[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	return &domain.Activity{
		Adoptions: domain.Newest(views),
		Pets:      domain.Newest(recentPets),
		Adopters:  domain.Newest(recentAdopters),
	}, nil
}

var _ ports.Service = (*Service)(nil)
