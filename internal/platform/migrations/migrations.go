package migrations

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Run applies the schema for every bounded context. Tables are created in
// dependency order so foreign keys resolve.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&petRecord{},
		&adopterRecord{},
		&adminRecord{},
		&adoptionRecord{},
		&favoriteRecord{},
		&visitRecord{},
		&vaccinationRecord{},
		&revocationRecord{},
	)
}

// Pet schema mirrors the pets Postgres adapter.
type petRecord struct {
	ID             int64          `gorm:"primaryKey;column:id"`
	Name           string         `gorm:"column:name;size:100;not null"`
	Species        string         `gorm:"column:species;size:50;not null;index"`
	Breed          string         `gorm:"column:breed;size:100"`
	Age            int            `gorm:"column:age;not null;default:0"`
	Gender         string         `gorm:"column:gender;size:16;not null"`
	Color          string         `gorm:"column:color;size:50"`
	DateArrived    datatypes.Date `gorm:"column:date_arrived;not null;index"`
	SpayedNeutered bool           `gorm:"column:spayed_neutered;not null;default:false"`
	Temperament    string         `gorm:"column:temperament"`
	SpecialNeeds   string         `gorm:"column:special_needs"`
	PhotoURL       string         `gorm:"column:photo_url;size:512"`
	Status         string         `gorm:"column:status;type:varchar(32);not null;index"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

// Adopter schema mirrors the adopters Postgres adapter.
type adopterRecord struct {
	ID              int64     `gorm:"primaryKey;column:id"`
	Email           string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	PasswordHash    string    `gorm:"column:password_hash;not null"`
	FullName        string    `gorm:"column:full_name;size:150;not null"`
	ContactNo       string    `gorm:"column:contact_no;size:32"`
	Address         string    `gorm:"column:address"`
	HousingType     string    `gorm:"column:housing_type;size:16;not null"`
	ExperienceLevel string    `gorm:"column:experience_level;size:16;not null"`
	HasOtherPets    bool      `gorm:"column:has_other_pets;not null;default:false"`
	HasChildren     bool      `gorm:"column:has_children;not null;default:false"`
	CreatedAt       time.Time `gorm:"column:created_at;index"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (adopterRecord) TableName() string { return "adopters" }

// Admin schema mirrors the admins Postgres adapter.
type adminRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	FullName     string    `gorm:"column:full_name;size:150;not null"`
	Role         string    `gorm:"column:role;size:32;not null"`
	IsActive     bool      `gorm:"column:is_active;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminRecord) TableName() string { return "admins" }

// Adoption schema mirrors the adoptions Postgres adapter. Deleting a pet or
// an adopter removes its adoptions.
type adoptionRecord struct {
	ID              int64           `gorm:"primaryKey;column:id"`
	PetID           int64           `gorm:"column:pet_id;not null;index"`
	Pet             petRecord       `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE"`
	AdopterID       int64           `gorm:"column:adopter_id;not null;index"`
	Adopter         adopterRecord   `gorm:"foreignKey:AdopterID;constraint:OnDelete:CASCADE"`
	ApplicationDate time.Time       `gorm:"column:application_date;not null;index"`
	AdoptionDate    *datatypes.Date `gorm:"column:adoption_date"`
	Fee             float64         `gorm:"column:adoption_fee;type:numeric(10,2);not null;default:0"`
	ContractSigned  bool            `gorm:"column:contract_signed;not null;default:false"`
	Notes           string          `gorm:"column:notes"`
	Status          string          `gorm:"column:status;type:varchar(32);not null;index"`
	ApprovalStatus  string          `gorm:"column:approval_status;type:varchar(32)"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (adoptionRecord) TableName() string { return "adoptions" }

// Favorite schema mirrors the favorites Postgres adapter. One row per adopter and pet.
type favoriteRecord struct {
	ID        int64         `gorm:"primaryKey;column:id"`
	AdopterID int64         `gorm:"column:adopter_id;not null;uniqueIndex:idx_favorites_adopter_pet"`
	Adopter   adopterRecord `gorm:"foreignKey:AdopterID;constraint:OnDelete:CASCADE"`
	PetID     int64         `gorm:"column:pet_id;not null;uniqueIndex:idx_favorites_adopter_pet;index"`
	Pet       petRecord     `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE"`
	Notes     string        `gorm:"column:notes"`
	DateAdded time.Time     `gorm:"column:date_added;not null;index"`
}

func (favoriteRecord) TableName() string { return "favorites" }

// Visit schema mirrors the veterinary Postgres adapter.
type visitRecord struct {
	ID            int64           `gorm:"primaryKey;column:id"`
	PetID         int64           `gorm:"column:pet_id;not null;index"`
	Pet           petRecord       `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE"`
	VisitDate     datatypes.Date  `gorm:"column:visit_date;not null;index"`
	Veterinarian  string          `gorm:"column:veterinarian;size:150;not null"`
	VisitType     string          `gorm:"column:visit_type;size:32;not null;index"`
	WeightKg      *float64        `gorm:"column:weight_kg;type:numeric(6,2)"`
	TemperatureC  *float64        `gorm:"column:temperature_c;type:numeric(4,1)"`
	Diagnosis     string          `gorm:"column:diagnosis"`
	Notes         string          `gorm:"column:notes"`
	ProcedureCost float64         `gorm:"column:procedure_cost;type:numeric(10,2);not null;default:0"`
	NextVisitDate *datatypes.Date `gorm:"column:next_visit_date"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (visitRecord) TableName() string { return "vet_visits" }

// Vaccination schema mirrors the veterinary Postgres adapter. Deleting a visit removes its vaccinations.
type vaccinationRecord struct {
	ID               int64           `gorm:"primaryKey;column:id"`
	VisitID          int64           `gorm:"column:visit_id;not null;index"`
	Visit            visitRecord     `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE"`
	VaccineName      string          `gorm:"column:vaccine_name;size:150;not null"`
	DateAdministered datatypes.Date  `gorm:"column:date_administered;not null;index"`
	AdministeredBy   string          `gorm:"column:administered_by;size:150"`
	Manufacturer     string          `gorm:"column:manufacturer;size:150"`
	NextDueDate      *datatypes.Date `gorm:"column:next_due_date;index"`
	Site             string          `gorm:"column:site;size:64"`
	Reaction         string          `gorm:"column:reaction"`
	Cost             float64         `gorm:"column:cost;type:numeric(10,2);not null;default:0"`
	Status           string          `gorm:"column:status;size:16;not null;index"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (vaccinationRecord) TableName() string { return "vaccinations" }

// Revocation schema mirrors the tokens Postgres adapter.
type revocationRecord struct {
	TokenID   string    `gorm:"primaryKey;column:token_id;size:64"`
	Subject   string    `gorm:"column:subject;size:255;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (revocationRecord) TableName() string { return "token_revocations" }
