package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists adopters in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type adopterRecord struct {
	ID              int64     `gorm:"primaryKey;column:id"`
	Email           string    `gorm:"column:email"`
	PasswordHash    string    `gorm:"column:password_hash"`
	FullName        string    `gorm:"column:full_name"`
	ContactNo       string    `gorm:"column:contact_no"`
	Address         string    `gorm:"column:address"`
	HousingType     string    `gorm:"column:housing_type"`
	ExperienceLevel string    `gorm:"column:experience_level"`
	HasOtherPets    bool      `gorm:"column:has_other_pets"`
	HasChildren     bool      `gorm:"column:has_children"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (adopterRecord) TableName() string { return "adopters" }

func (r *Repository) Create(ctx context.Context, adopter *domain.Adopter) (*domain.Adopter, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if adopter == nil {
		return nil, errors.New("adopter is nil")
	}
	if err := adopter.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(adopter)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, id int64, mutate func(*domain.Adopter) error) (*domain.Adopter, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var updated *domain.Adopter
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record adopterRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		adopter := record.toDomain()
		if err := mutate(adopter); err != nil {
			return err
		}
		if err := adopter.Validate(); err != nil {
			return err
		}
		next := toRecord(adopter)
		if err := tx.Model(&adopterRecord{}).Where("id = ?", id).Updates(map[string]any{
			"email":            next.Email,
			"password_hash":    next.PasswordHash,
			"full_name":        next.FullName,
			"contact_no":       next.ContactNo,
			"address":          next.Address,
			"housing_type":     next.HousingType,
			"experience_level": next.ExperienceLevel,
			"has_other_pets":   next.HasOtherPets,
			"has_children":     next.HasChildren,
			"updated_at":       gorm.Expr("NOW()"),
		}).Error; err != nil {
			return translate(err)
		}
		adopter.ID, adopter.CreatedAt = record.ID, record.CreatedAt
		updated = adopter
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Adopter, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Adopter, error) {
	return r.first(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *Repository) List(ctx context.Context) ([]*domain.Adopter, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []adopterRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*domain.Adopter, 0, len(records))
	for i := range records {
		list = append(list, records[i].toDomain())
	}
	return list, nil
}

// Delete removes an adopter; the schema cascades to adoptions and favorites.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&adopterRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) first(ctx context.Context, query string, arg any) (*domain.Adopter, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record adopterRecord
	if err := r.db.WithContext(ctx).First(&record, query, arg).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres adopter repository not configured")
	}
	return nil
}

func translate(err error) error {
	switch {
	case platformpostgres.IsNotFound(err):
		return ports.ErrNotFound
	case platformpostgres.IsUniqueViolation(err):
		return ports.ErrDuplicateEmail
	}
	return err
}

func toRecord(a *domain.Adopter) adopterRecord {
	return adopterRecord{
		ID:              a.ID,
		Email:           a.Email,
		PasswordHash:    a.PasswordHash,
		FullName:        a.FullName,
		ContactNo:       a.ContactNo,
		Address:         a.Address,
		HousingType:     string(a.HousingType),
		ExperienceLevel: string(a.ExperienceLevel),
		HasOtherPets:    a.HasOtherPets,
		HasChildren:     a.HasChildren,
		CreatedAt:       a.CreatedAt,
	}
}

func (r adopterRecord) toDomain() *domain.Adopter {
	return &domain.Adopter{
		ID:              r.ID,
		Email:           r.Email,
		PasswordHash:    r.PasswordHash,
		FullName:        r.FullName,
		ContactNo:       r.ContactNo,
		Address:         r.Address,
		HousingType:     domain.HousingType(r.HousingType),
		ExperienceLevel: domain.ExperienceLevel(r.ExperienceLevel),
		HasOtherPets:    r.HasOtherPets,
		HasChildren:     r.HasChildren,
		CreatedAt:       r.CreatedAt,
	}
}
