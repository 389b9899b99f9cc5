package domain

import (
	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
)

// PetStats counts the catalogue by status.
type PetStats struct {
	Total       int
	Available   int
	Adopted     int
	Reserved    int
	MedicalHold int
}

// AdoptionStats counts adoptions by lifecycle status. Pending covers every
// application that still awaits completion under either policy.
type AdoptionStats struct {
	Total     int
	Pending   int
	Completed int
	Cancelled int
	Returned  int
}

// VaccinationStats counts vaccinations and the overdue subset.
type VaccinationStats struct {
	Total   int
	Overdue int
}

// Stats is the staff dashboard summary.
type Stats struct {
	Pets         PetStats
	Adopters     int
	Adoptions    AdoptionStats
	VetVisits    int
	Vaccinations VaccinationStats
}

// TallyPets counts pets per status.
func TallyPets(pets []*petdomain.Pet) PetStats {
	var s PetStats
	for _, p := range pets {
		if p == nil {
			continue
		}
		s.Total++
		switch p.Status {
		case petdomain.StatusAvailable:
			s.Available++
		case petdomain.StatusAdopted:
			s.Adopted++
		case petdomain.StatusReserved:
			s.Reserved++
		case petdomain.StatusMedicalHold:
			s.MedicalHold++
		}
	}
	return s
}

// TallyAdoptions counts adoptions per lifecycle status.
func TallyAdoptions(adoptions []*adoptiondomain.Adoption) AdoptionStats {
	var s AdoptionStats
	for _, a := range adoptions {
		if a == nil {
			continue
		}
		s.Total++
		switch {
		case a.Open():
			s.Pending++
		case a.Status == adoptiondomain.StatusCompleted:
			s.Completed++
		case a.Status == adoptiondomain.StatusCancelled:
			s.Cancelled++
		case a.Status == adoptiondomain.StatusReturned:
			s.Returned++
		}
	}
	return s
}
