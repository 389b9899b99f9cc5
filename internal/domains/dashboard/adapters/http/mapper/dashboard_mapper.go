package mapper

import (
	"time"

	adoptionmapper "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/http/mapper"
	"github.com/Apurer/pet-adoption-center/internal/domains/dashboard/domain"
	petmapper "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/http/mapper"
)

type PetStats struct {
	Total       int `json:"total_pets"`
	Available   int `json:"available"`
	Adopted     int `json:"adopted"`
	Reserved    int `json:"reserved"`
	MedicalHold int `json:"medical_hold"`
}

type AdopterStats struct {
	Total int `json:"total_adopters"`
}

type AdoptionStats struct {
	Total     int `json:"total_adoptions"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Returned  int `json:"returned"`
}

type VisitStats struct {
	Total int `json:"total_visits"`
}

type VaccinationStats struct {
	Total   int `json:"total_vaccinations"`
	Overdue int `json:"overdue"`
}

// StatsResponse is the body of GET /api/admin/dashboard/stats.
type StatsResponse struct {
	Pets         PetStats         `json:"pets"`
	Adopters     AdopterStats     `json:"adopters"`
	Adoptions    AdoptionStats    `json:"adoptions"`
	VetVisits    VisitStats       `json:"vetVisits"`
	Vaccinations VaccinationStats `json:"vaccinations"`
}

type RecentAdopter struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityResponse is the body of GET /api/admin/dashboard/activity.
type ActivityResponse struct {
	RecentAdoptions []adoptionmapper.Adoption `json:"recentAdoptions"`
	RecentPets      []petmapper.Pet           `json:"recentPets"`
	RecentAdopters  []RecentAdopter           `json:"recentAdopters"`
}

func FromStats(s *domain.Stats) StatsResponse {
	return StatsResponse{
		Pets: PetStats{
			Total:       s.Pets.Total,
			Available:   s.Pets.Available,
			Adopted:     s.Pets.Adopted,
			Reserved:    s.Pets.Reserved,
			MedicalHold: s.Pets.MedicalHold,
		},
		Adopters: AdopterStats{Total: s.Adopters},
		Adoptions: AdoptionStats{
			Total:     s.Adoptions.Total,
			Pending:   s.Adoptions.Pending,
			Completed: s.Adoptions.Completed,
			Cancelled: s.Adoptions.Cancelled,
			Returned:  s.Adoptions.Returned,
		},
		VetVisits:    VisitStats{Total: s.VetVisits},
		Vaccinations: VaccinationStats{Total: s.Vaccinations.Total, Overdue: s.Vaccinations.Overdue},
	}
}

func FromActivity(a *domain.Activity) ActivityResponse {
	resp := ActivityResponse{
		RecentAdoptions: adoptionmapper.FromViews(a.Adoptions),
		RecentPets:      make([]petmapper.Pet, 0, len(a.Pets)),
		RecentAdopters:  make([]RecentAdopter, 0, len(a.Adopters)),
	}
	for _, p := range a.Pets {
		resp.RecentPets = append(resp.RecentPets, petmapper.FromDomainPet(p.Pet))
	}
	for _, ad := range a.Adopters {
		resp.RecentAdopters = append(resp.RecentAdopters, RecentAdopter(ad))
	}
	return resp
}
