package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/memory"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var today = time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC)

type petBook map[int64]domain.PetSummary

func (b petBook) PetSummary(_ context.Context, id int64) (domain.PetSummary, error) {
	if s, ok := b[id]; ok {
		return s, nil
	}
	return domain.PetSummary{}, ports.ErrPetNotFound
}

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newTestService() *Service {
	pets := petBook{
		1: {ID: 1, Name: "Rex", Species: "Dog"},
		2: {ID: 2, Name: "Tom", Species: "Cat"},
	}
	return NewService(memory.NewRepository(),
		WithPetDirectory(pets),
		WithClock(func() time.Time { return today }),
	)
}

func addVisit(t *testing.T, svc *Service, petID int64, on *time.Time, visitType string) int64 {
	t.Helper()
	view, err := svc.CreateVisit(context.Background(), ports.CreateVisitInput{
		PetID: petID,
		VisitFields: ports.VisitFields{
			VisitDate:    on,
			Veterinarian: ptr("Dr. Ortiz"),
			VisitType:    ptr(visitType),
		},
	})
	require.NoError(t, err)
	return view.Visit.ID
}

func addDose(t *testing.T, svc *Service, visitID int64, vaccine string, given, due *time.Time, status *string) int64 {
	t.Helper()
	view, err := svc.CreateVaccination(context.Background(), ports.CreateVaccinationInput{
		VisitID: visitID,
		VaccinationFields: ports.VaccinationFields{
			VaccineName:      ptr(vaccine),
			DateAdministered: given,
			NextDueDate:      due,
			Status:           status,
		},
	})
	require.NoError(t, err)
	return view.Vaccination.ID
}

func TestCreateVisitRequiresPet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateVisit(ctx, ports.CreateVisitInput{
		PetID:       99,
		VisitFields: ports.VisitFields{VisitDate: date(2024, 9, 1), Veterinarian: ptr("Dr. A"), VisitType: ptr("Checkup")},
	})
	require.ErrorIs(t, err, errkind.ErrNotFound)

	_, err = svc.CreateVisit(ctx, ports.CreateVisitInput{
		PetID:       1,
		VisitFields: ports.VisitFields{VisitDate: date(2024, 9, 1), Veterinarian: ptr("Dr. A"), VisitType: ptr("Grooming")},
	})
	require.ErrorIs(t, err, errkind.ErrValidation)

	id := addVisit(t, svc, 1, date(2024, 9, 1), "checkup")
	view, err := svc.GetVisit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rex", view.Pet.Name)
	assert.Equal(t, domain.VisitCheckup, view.Visit.VisitType)
	assert.Empty(t, view.Vaccinations)
}

func TestListVisitsFiltersAndOrders(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	addVisit(t, svc, 1, date(2024, 1, 5), "Checkup")
	addVisit(t, svc, 1, date(2024, 6, 5), "Surgery")
	addVisit(t, svc, 2, date(2024, 3, 5), "Checkup")

	all, err := svc.ListVisits(ctx, ports.ListVisitsInput{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, *date(2024, 6, 5), all[0].Visit.VisitDate)
	assert.Equal(t, "Tom", all[1].Pet.Name)

	checkups, err := svc.ListVisits(ctx, ports.ListVisitsInput{PetID: 1, VisitType: "checkup"})
	require.NoError(t, err)
	require.Len(t, checkups, 1)
	assert.Equal(t, *date(2024, 1, 5), checkups[0].Visit.VisitDate)

	_, err = svc.ListVisits(ctx, ports.ListVisitsInput{VisitType: "Spa"})
	require.ErrorIs(t, err, errkind.ErrValidation)
}

func TestVaccinationRequiresVisitAndDefaultsToCompleted(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateVaccination(ctx, ports.CreateVaccinationInput{
		VisitID:           42,
		VaccinationFields: ports.VaccinationFields{VaccineName: ptr("Rabies"), DateAdministered: date(2024, 9, 1)},
	})
	require.ErrorIs(t, err, errkind.ErrNotFound)

	visitID := addVisit(t, svc, 1, date(2024, 9, 1), "Vaccination")
	doseID := addDose(t, svc, visitID, "Rabies", date(2024, 9, 1), date(2025, 9, 1), nil)

	dose, err := svc.GetVaccination(ctx, doseID)
	require.NoError(t, err)
	assert.Equal(t, domain.VaccinationCompleted, dose.Vaccination.Status)
	assert.Equal(t, "Rex", dose.Pet.Name)
	require.NotNil(t, dose.Visit)
	assert.Equal(t, visitID, dose.Visit.ID)

	updated, err := svc.UpdateVaccination(ctx, ports.UpdateVaccinationInput{
		ID:                doseID,
		VaccinationFields: ports.VaccinationFields{Status: ptr("Scheduled"), Site: ptr("left shoulder")},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VaccinationScheduled, updated.Vaccination.Status)
	assert.Equal(t, "left shoulder", updated.Vaccination.Site)
	assert.Equal(t, "Rabies", updated.Vaccination.VaccineName)
}

func TestDeleteVisitCascadesVaccinations(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	visitID := addVisit(t, svc, 1, date(2024, 9, 1), "Vaccination")
	doseID := addDose(t, svc, visitID, "Rabies", date(2024, 9, 1), nil, nil)

	require.NoError(t, svc.DeleteVisit(ctx, visitID))
	_, err := svc.GetVaccination(ctx, doseID)
	require.ErrorIs(t, err, errkind.ErrNotFound)
	require.ErrorIs(t, svc.DeleteVisit(ctx, visitID), errkind.ErrNotFound)
}

func TestOverdueAndCounts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	rex := addVisit(t, svc, 1, date(2024, 1, 10), "Vaccination")
	tom := addVisit(t, svc, 2, date(2024, 2, 10), "Vaccination")

	addDose(t, svc, rex, "Distemper", date(2024, 1, 10), date(2024, 8, 1), ptr("Scheduled"))
	addDose(t, svc, tom, "FVRCP", date(2024, 2, 10), date(2024, 7, 1), ptr("Overdue"))
	addDose(t, svc, rex, "Rabies", date(2024, 1, 10), date(2024, 3, 1), nil)
	addDose(t, svc, tom, "FeLV", date(2024, 2, 10), date(2024, 12, 1), ptr("Scheduled"))

	overdue, err := svc.Overdue(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	assert.Equal(t, "FVRCP", overdue[0].Vaccination.VaccineName)
	assert.Equal(t, "Tom", overdue[0].Pet.Name)
	assert.Equal(t, "Distemper", overdue[1].Vaccination.VaccineName)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Counts{Visits: 2, Vaccinations: 4, Overdue: 2}, counts)

	scheduled, err := svc.ListVaccinations(ctx, ports.ListVaccinationsInput{Status: "Scheduled", PetID: 2})
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "FeLV", scheduled[0].Vaccination.VaccineName)
}

func TestPetHistoryNestsVaccinations(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	older := addVisit(t, svc, 1, date(2024, 1, 10), "Checkup")
	newer := addVisit(t, svc, 1, date(2024, 5, 10), "Vaccination")
	addVisit(t, svc, 2, date(2024, 6, 10), "Checkup")
	addDose(t, svc, newer, "Rabies", date(2024, 5, 10), nil, nil)
	addDose(t, svc, newer, "Lepto", date(2024, 5, 10), nil, nil)

	history, err := svc.PetHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer, history[0].Visit.ID)
	assert.Len(t, history[0].Vaccinations, 2)
	assert.Equal(t, older, history[1].Visit.ID)
	assert.NotNil(t, history[1].Vaccinations)
	assert.Empty(t, history[1].Vaccinations)

	require.NoError(t, svc.DeleteByPet(ctx, 1))
	history, err = svc.PetHistory(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateVisitKeepsPet(t *testing.T) {
	svc := newTestService()
	id := addVisit(t, svc, 1, date(2024, 4, 1), "Checkup")

	view, err := svc.UpdateVisit(context.Background(), ports.UpdateVisitInput{
		ID:          id,
		VisitFields: ports.VisitFields{Diagnosis: ptr("healthy"), WeightKg: ptr(21.5), NextVisitDate: date(2024, 10, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.Visit.PetID)
	assert.Equal(t, "healthy", view.Visit.Diagnosis)
	require.NotNil(t, view.Visit.WeightKg)
	assert.InDelta(t, 21.5, *view.Visit.WeightKg, 0.0001)

	_, err = svc.UpdateVisit(context.Background(), ports.UpdateVisitInput{
		ID:          id,
		VisitFields: ports.VisitFields{NextVisitDate: date(2024, 1, 1)},
	})
	require.ErrorIs(t, err, errkind.ErrValidation)
}
