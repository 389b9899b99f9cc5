package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewVisitValidates(t *testing.T) {
	v, err := NewVisit(1, time.Date(2024, 2, 3, 15, 4, 0, 0, time.UTC), " Dr. Kim ", VisitCheckup)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 3), v.VisitDate)
	assert.Equal(t, "Dr. Kim", v.Veterinarian)

	cases := []struct {
		name   string
		mutate func(*Visit)
		want   error
	}{
		{"no pet", func(v *Visit) { v.PetID = 0 }, ErrMissingPet},
		{"no vet", func(v *Visit) { v.Veterinarian = " " }, ErrEmptyVeterinarian},
		{"bad type", func(v *Visit) { v.VisitType = "Spa" }, ErrInvalidVisitType},
		{"negative cost", func(v *Visit) { v.ProcedureCost = -1 }, ErrNegativeCost},
		{"zero weight", func(v *Visit) { w := 0.0; v.WeightKg = &w }, ErrInvalidVitals},
		{"next before visit", func(v *Visit) { d := day(2024, 1, 1); v.NextVisitDate = &d }, ErrNextVisitBeforeDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := v.Clone()
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestParseVisitType(t *testing.T) {
	got, err := ParseVisitType("surgery")
	require.NoError(t, err)
	assert.Equal(t, VisitSurgery, got)
	_, err = ParseVisitType("")
	assert.ErrorIs(t, err, ErrInvalidVisitType)
}

func TestParseVaccinationStatusDefaultsToCompleted(t *testing.T) {
	got, err := ParseVaccinationStatus("")
	require.NoError(t, err)
	assert.Equal(t, VaccinationCompleted, got)
	got, err = ParseVaccinationStatus("scheduled")
	require.NoError(t, err)
	assert.Equal(t, VaccinationScheduled, got)
	_, err = ParseVaccinationStatus("Skipped")
	assert.ErrorIs(t, err, ErrInvalidVaccinationStatus)
}

func TestVaccinationIsOverdue(t *testing.T) {
	today := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	due := func(d time.Time) *time.Time { return &d }

	cases := []struct {
		name   string
		status VaccinationStatus
		next   *time.Time
		want   bool
	}{
		{"no due date", VaccinationScheduled, nil, false},
		{"due yesterday", VaccinationScheduled, due(day(2024, 5, 9)), true},
		{"due today", VaccinationScheduled, due(day(2024, 5, 10)), false},
		{"marked overdue", VaccinationOverdue, due(day(2024, 1, 1)), true},
		{"completed", VaccinationCompleted, due(day(2024, 1, 1)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &Vaccination{Status: tc.status, NextDueDate: tc.next}
			assert.Equal(t, tc.want, v.IsOverdue(today))
		})
	}
}

func TestNewVaccination(t *testing.T) {
	v, err := NewVaccination(4, "Rabies", day(2024, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, VaccinationCompleted, v.Status)

	_, err = NewVaccination(0, "Rabies", day(2024, 3, 1))
	assert.ErrorIs(t, err, ErrMissingVisit)
	_, err = NewVaccination(4, "", day(2024, 3, 1))
	assert.ErrorIs(t, err, ErrEmptyVaccineName)

	d := day(2024, 2, 1)
	v.NextDueDate = &d
	assert.ErrorIs(t, v.Validate(), ErrDueBeforeAdministered)
}
