package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adopterdomain "github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	adopterports "github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	adoptionports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/domains/dashboard/domain"
	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	vetdomain "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
	"github.com/Apurer/pet-adoption-center/internal/shared/projection"
)

type petList struct {
	pets []*pettypes.PetProjection
	err  error
}

func (l petList) List(context.Context, pettypes.ListPetsInput) ([]*pettypes.PetProjection, error) {
	return l.pets, l.err
}

type adopterList []adopterports.Summary

func (l adopterList) List(context.Context) ([]adopterports.Summary, error) { return l, nil }

type adoptionList []adoptiondomain.View

func (l adoptionList) List(context.Context, adoptionports.ListInput) ([]adoptiondomain.View, error) {
	return l, nil
}

type vetCounts vetdomain.Counts

func (c vetCounts) Counts(context.Context) (vetdomain.Counts, error) { return vetdomain.Counts(c), nil }

var base = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func pet(id int64, status petdomain.Status, createdMinutes int) *pettypes.PetProjection {
	created := base.Add(time.Duration(createdMinutes) * time.Minute)
	return projection.New(&petdomain.Pet{ID: id, Name: "pet", Species: "Dog", Status: status}, created, created)
}

func adoption(id int64, status adoptiondomain.Status) adoptiondomain.View {
	return adoptiondomain.View{Adoption: &adoptiondomain.Adoption{ID: id, Status: status}}
}

func fixture() *Service {
	pets := petList{pets: []*pettypes.PetProjection{
		pet(1, petdomain.StatusAvailable, 1),
		pet(2, petdomain.StatusReserved, 7),
		pet(3, petdomain.StatusAdopted, 3),
		pet(4, petdomain.StatusMedicalHold, 4),
		pet(5, petdomain.StatusAvailable, 5),
		pet(6, petdomain.StatusAvailable, 6),
		pet(7, petdomain.StatusAvailable, 2),
	}}
	adopters := adopterList{}
	for i := int64(1); i <= 6; i++ {
		adopters = append(adopters, adopterports.Summary{Adopter: &adopterdomain.Adopter{
			ID:        i,
			Email:     "a@example.com",
			FullName:  "Adopter",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}})
	}
	adoptions := adoptionList{
		adoption(9, adoptiondomain.StatusApplied),
		adoption(8, adoptiondomain.StatusPending),
		adoption(7, adoptiondomain.StatusCompleted),
		adoption(6, adoptiondomain.StatusCancelled),
		adoption(5, adoptiondomain.StatusReturned),
		adoption(4, adoptiondomain.StatusCompleted),
	}
	return NewService(pets, adopters, adoptions, vetCounts{Visits: 12, Vaccinations: 30, Overdue: 2})
}

func TestStats(t *testing.T) {
	stats, err := fixture().Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.PetStats{Total: 7, Available: 4, Adopted: 1, Reserved: 1, MedicalHold: 1}, stats.Pets)
	assert.Equal(t, 6, stats.Adopters)
	assert.Equal(t, domain.AdoptionStats{Total: 6, Pending: 2, Completed: 2, Cancelled: 1, Returned: 1}, stats.Adoptions)
	assert.Equal(t, 12, stats.VetVisits)
	assert.Equal(t, domain.VaccinationStats{Total: 30, Overdue: 2}, stats.Vaccinations)
}

func TestActivityReturnsFiveNewestOfEach(t *testing.T) {
	activity, err := fixture().Activity(context.Background())
	require.NoError(t, err)

	require.Len(t, activity.Adoptions, domain.RecentLimit)
	assert.Equal(t, int64(9), activity.Adoptions[0].Adoption.ID)

	petIDs := make([]int64, 0, len(activity.Pets))
	for _, p := range activity.Pets {
		petIDs = append(petIDs, p.Pet.ID)
	}
	assert.Equal(t, []int64{2, 6, 5, 4, 3}, petIDs)

	adopterIDs := make([]int64, 0, len(activity.Adopters))
	for _, a := range activity.Adopters {
		adopterIDs = append(adopterIDs, a.ID)
	}
	assert.Equal(t, []int64{6, 5, 4, 3, 2}, adopterIDs)
}

func TestStatsClassifiesSourceFailures(t *testing.T) {
	svc := NewService(petList{err: errors.New("db down")}, adopterList{}, adoptionList{}, vetCounts{})

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, errkind.ErrStore)
}
