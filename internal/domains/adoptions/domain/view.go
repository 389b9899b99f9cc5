package domain

// PetSummary is the pet data shown next to an adoption.
type PetSummary struct {
	ID       int64
	Name     string
	Species  string
	Breed    string
	PhotoURL string
}

// AdopterSummary is the adopter data shown next to an adoption.
type AdopterSummary struct {
	ID              int64
	FullName        string
	Email           string
	ContactNo       string
	Address         string
	HousingType     string
	ExperienceLevel string
}

// View is an adoption joined with its pet and adopter.
type View struct {
	Adoption *Adoption
	Pet      PetSummary
	Adopter  AdopterSummary
}
