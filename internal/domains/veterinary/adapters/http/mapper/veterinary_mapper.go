package mapper

import (
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// VisitRequest is the create and update payload for a visit. PetID is only
// read on create.
type VisitRequest struct {
	PetID         int64    `json:"petId,omitempty"`
	VisitDate     *string  `json:"visitDate,omitempty"`
	Veterinarian  *string  `json:"veterinarian,omitempty"`
	VisitType     *string  `json:"visitType,omitempty"`
	WeightKg      *float64 `json:"weight,omitempty"`
	TemperatureC  *float64 `json:"temperature,omitempty"`
	Diagnosis     *string  `json:"diagnosis,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	ProcedureCost *float64 `json:"procedureCost,omitempty"`
	NextVisitDate *string  `json:"nextVisitDate,omitempty"`
}

// VaccinationRequest is the create and update payload for a vaccination.
// VisitID is only read on create.
type VaccinationRequest struct {
	VisitID          int64    `json:"visitId,omitempty"`
	VaccineName      *string  `json:"vaccineName,omitempty"`
	DateAdministered *string  `json:"dateAdministered,omitempty"`
	AdministeredBy   *string  `json:"administeredBy,omitempty"`
	Manufacturer     *string  `json:"manufacturer,omitempty"`
	NextDueDate      *string  `json:"nextDueDate,omitempty"`
	Site             *string  `json:"site,omitempty"`
	Reaction         *string  `json:"reaction,omitempty"`
	Cost             *float64 `json:"cost,omitempty"`
	Status           *string  `json:"status,omitempty"`
}

type Visit struct {
	ID            int64         `json:"id"`
	PetID         int64         `json:"petId"`
	PetName       string        `json:"petName,omitempty"`
	Species       string        `json:"species,omitempty"`
	VisitDate     string        `json:"visitDate"`
	Veterinarian  string        `json:"veterinarian"`
	VisitType     string        `json:"visitType"`
	WeightKg      *float64      `json:"weight,omitempty"`
	TemperatureC  *float64      `json:"temperature,omitempty"`
	Diagnosis     string        `json:"diagnosis,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	ProcedureCost float64       `json:"procedureCost"`
	NextVisitDate *string       `json:"nextVisitDate,omitempty"`
	Vaccinations  []Vaccination `json:"vaccinations,omitempty"`
}

type Vaccination struct {
	ID               int64   `json:"id"`
	VisitID          int64   `json:"visitId"`
	VaccineName      string  `json:"vaccineName"`
	DateAdministered string  `json:"dateAdministered"`
	AdministeredBy   string  `json:"administeredBy,omitempty"`
	Manufacturer     string  `json:"manufacturer,omitempty"`
	NextDueDate      *string `json:"nextDueDate,omitempty"`
	Site             string  `json:"site,omitempty"`
	Reaction         string  `json:"reaction,omitempty"`
	Cost             float64 `json:"cost"`
	Status           string  `json:"status"`

	VisitDate string `json:"visitDate,omitempty"`
	PetID     int64  `json:"petId,omitempty"`
	PetName   string `json:"petName,omitempty"`
	Species   string `json:"species,omitempty"`
}

func (r VisitRequest) fields() (ports.VisitFields, error) {
	visitDate, err := dates.ParsePtr(r.VisitDate)
	if err != nil {
		return ports.VisitFields{}, err
	}
	next, err := dates.ParsePtr(r.NextVisitDate)
	if err != nil {
		return ports.VisitFields{}, err
	}
	return ports.VisitFields{
		VisitDate:     visitDate,
		Veterinarian:  r.Veterinarian,
		VisitType:     r.VisitType,
		WeightKg:      r.WeightKg,
		TemperatureC:  r.TemperatureC,
		Diagnosis:     r.Diagnosis,
		Notes:         r.Notes,
		ProcedureCost: r.ProcedureCost,
		NextVisitDate: next,
	}, nil
}

func (r VisitRequest) ToCreateInput() (ports.CreateVisitInput, error) {
	f, err := r.fields()
	return ports.CreateVisitInput{PetID: r.PetID, VisitFields: f}, err
}

func (r VisitRequest) ToUpdateInput(id int64) (ports.UpdateVisitInput, error) {
	f, err := r.fields()
	return ports.UpdateVisitInput{ID: id, VisitFields: f}, err
}

func (r VaccinationRequest) fields() (ports.VaccinationFields, error) {
	administered, err := dates.ParsePtr(r.DateAdministered)
	if err != nil {
		return ports.VaccinationFields{}, err
	}
	due, err := dates.ParsePtr(r.NextDueDate)
	if err != nil {
		return ports.VaccinationFields{}, err
	}
	return ports.VaccinationFields{
		VaccineName:      r.VaccineName,
		DateAdministered: administered,
		AdministeredBy:   r.AdministeredBy,
		Manufacturer:     r.Manufacturer,
		NextDueDate:      due,
		Site:             r.Site,
		Reaction:         r.Reaction,
		Cost:             r.Cost,
		Status:           r.Status,
	}, nil
}

func (r VaccinationRequest) ToCreateInput() (ports.CreateVaccinationInput, error) {
	f, err := r.fields()
	return ports.CreateVaccinationInput{VisitID: r.VisitID, VaccinationFields: f}, err
}

func (r VaccinationRequest) ToUpdateInput(id int64) (ports.UpdateVaccinationInput, error) {
	f, err := r.fields()
	return ports.UpdateVaccinationInput{ID: id, VaccinationFields: f}, err
}

func FromVisitView(v domain.VisitView) Visit {
	visit := v.Visit
	out := Visit{
		ID:            visit.ID,
		PetID:         visit.PetID,
		PetName:       v.Pet.Name,
		Species:       v.Pet.Species,
		VisitDate:     dates.Format(visit.VisitDate),
		Veterinarian:  visit.Veterinarian,
		VisitType:     string(visit.VisitType),
		WeightKg:      visit.WeightKg,
		TemperatureC:  visit.TemperatureC,
		Diagnosis:     visit.Diagnosis,
		Notes:         visit.Notes,
		ProcedureCost: visit.ProcedureCost,
		NextVisitDate: dates.FormatPtr(visit.NextVisitDate),
	}
	if v.Vaccinations != nil {
		out.Vaccinations = make([]Vaccination, 0, len(v.Vaccinations))
		for _, dose := range v.Vaccinations {
			out.Vaccinations = append(out.Vaccinations, fromVaccination(dose))
		}
	}
	return out
}

func FromVisitViews(views []domain.VisitView) []Visit {
	out := make([]Visit, 0, len(views))
	for _, v := range views {
		out = append(out, FromVisitView(v))
	}
	return out
}

func fromVaccination(v *domain.Vaccination) Vaccination {
	return Vaccination{
		ID:               v.ID,
		VisitID:          v.VisitID,
		VaccineName:      v.VaccineName,
		DateAdministered: dates.Format(v.DateAdministered),
		AdministeredBy:   v.AdministeredBy,
		Manufacturer:     v.Manufacturer,
		NextDueDate:      dates.FormatPtr(v.NextDueDate),
		Site:             v.Site,
		Reaction:         v.Reaction,
		Cost:             v.Cost,
		Status:           string(v.Status),
	}
}

func FromVaccinationView(v domain.VaccinationView) Vaccination {
	out := fromVaccination(v.Vaccination)
	if v.Visit != nil {
		out.VisitDate = dates.Format(v.Visit.VisitDate)
		out.PetID = v.Visit.PetID
	}
	out.PetName = v.Pet.Name
	out.Species = v.Pet.Species
	return out
}

func FromVaccinationViews(views []domain.VaccinationView) []Vaccination {
	out := make([]Vaccination, 0, len(views))
	for _, v := range views {
		out = append(out, FromVaccinationView(v))
	}
	return out
}
