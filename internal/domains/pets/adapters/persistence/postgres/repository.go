package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists pets in PostgreSQL using GORM-mapped columns.
// The schema is owned by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type petRecord struct {
	ID             int64          `gorm:"primaryKey;column:id"`
	Name           string         `gorm:"column:name"`
	Species        string         `gorm:"column:species"`
	Breed          string         `gorm:"column:breed"`
	Age            int            `gorm:"column:age"`
	Gender         string         `gorm:"column:gender"`
	Color          string         `gorm:"column:color"`
	DateArrived    datatypes.Date `gorm:"column:date_arrived"`
	SpayedNeutered bool           `gorm:"column:spayed_neutered"`
	Temperament    string         `gorm:"column:temperament"`
	SpecialNeeds   string         `gorm:"column:special_needs"`
	PhotoURL       string         `gorm:"column:photo_url"`
	Status         string         `gorm:"column:status"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

func newPetRecord(p *domain.Pet) petRecord {
	return petRecord{
		ID:             p.ID,
		Name:           p.Name,
		Species:        p.Species,
		Breed:          p.Breed,
		Age:            p.Age,
		Gender:         string(p.Gender),
		Color:          p.Color,
		DateArrived:    datatypes.Date(p.DateArrived),
		SpayedNeutered: p.SpayedNeutered,
		Temperament:    p.Temperament,
		SpecialNeeds:   p.SpecialNeeds,
		PhotoURL:       p.PhotoURL,
		Status:         string(p.Status),
	}
}

func (r petRecord) columns() map[string]any {
	return map[string]any{
		"name":            r.Name,
		"species":         r.Species,
		"breed":           r.Breed,
		"age":             r.Age,
		"gender":          r.Gender,
		"color":           r.Color,
		"date_arrived":    r.DateArrived,
		"spayed_neutered": r.SpayedNeutered,
		"temperament":     r.Temperament,
		"special_needs":   r.SpecialNeeds,
		"photo_url":       r.PhotoURL,
		"status":          r.Status,
		"updated_at":      gorm.Expr("NOW()"),
	}
}

// Save inserts a pet, or replaces it when the ID already exists.
func (r *Repository) Save(ctx context.Context, pet *domain.Pet) (*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, errors.New("cannot save nil pet")
	}
	if err := pet.Validate(); err != nil {
		return nil, err
	}
	record := newPetRecord(pet)
	query := r.db.WithContext(ctx)
	if record.ID != 0 {
		query = query.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(record.columns()),
		})
	}
	if err := query.Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// Update locks the row, applies mutate and writes the result in one transaction.
func (r *Repository) Update(ctx context.Context, id int64, mutate func(*domain.Pet) error) (*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record petRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ports.ErrNotFound
			}
			return err
		}
		pet := record.toDomain()
		if err := mutate(pet); err != nil {
			return err
		}
		if err := pet.Validate(); err != nil {
			return err
		}
		return tx.Model(&petRecord{}).Where("id = ?", id).Updates(newPetRecord(pet).columns()).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// GetByID fetches a pet by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record petRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return toProjection(&record), nil
}

// Delete removes a pet; the schema cascades to dependent rows.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&petRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns pets matching filter, most recent arrival first.
func (r *Repository) List(ctx context.Context, filter ports.Filter) ([]*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Model(&petRecord{})
	if filter.Species != "" {
		query = query.Where("LOWER(species) = ?", strings.ToLower(filter.Species))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(breed) LIKE ?)", like, like)
	}
	var records []petRecord
	if err := query.Order("date_arrived DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*projection.Projection[*domain.Pet], 0, len(records))
	for i := range records {
		list = append(list, toProjection(&records[i]))
	}
	return list, nil
}

// Species returns every distinct species, sorted.
func (r *Repository) Species(ctx context.Context) ([]string, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	species := []string{}
	if err := r.db.WithContext(ctx).Model(&petRecord{}).
		Distinct("species").
		Order("species").
		Pluck("species", &species).Error; err != nil {
		return nil, err
	}
	return species, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres pet repository not configured")
	}
	return nil
}

func toProjection(record *petRecord) *projection.Projection[*domain.Pet] {
	return projection.New(record.toDomain(), record.CreatedAt, record.UpdatedAt)
}

func (r *petRecord) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:             r.ID,
		Name:           r.Name,
		Species:        r.Species,
		Breed:          r.Breed,
		Age:            r.Age,
		Gender:         domain.Gender(r.Gender),
		Color:          r.Color,
		DateArrived:    time.Time(r.DateArrived).UTC(),
		SpayedNeutered: r.SpayedNeutered,
		Temperament:    r.Temperament,
		SpecialNeeds:   r.SpecialNeeds,
		PhotoURL:       r.PhotoURL,
		Status:         domain.Status(r.Status),
	}
}
