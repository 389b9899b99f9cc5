package domain

// PetSummary names the pet a visit belongs to.
type PetSummary struct {
	ID      int64
	Name    string
	Species string
}

// VisitView is a visit with its pet and, where loaded, its vaccinations.
type VisitView struct {
	Visit        *Visit
	Pet          PetSummary
	Vaccinations []*Vaccination
}

// VaccinationView is a vaccination with the visit and pet it was given on.
type VaccinationView struct {
	Vaccination *Vaccination
	Visit       *Visit
	Pet         PetSummary
}

// Counts totals the veterinary records for the dashboard.
type Counts struct {
	Visits       int
	Vaccinations int
	Overdue      int
}
