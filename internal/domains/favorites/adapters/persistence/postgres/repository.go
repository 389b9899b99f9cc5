package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists favorites in PostgreSQL. The unique index on
// (adopter_id, pet_id) enforces one favorite per pair.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type favoriteRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	AdopterID int64     `gorm:"column:adopter_id"`
	PetID     int64     `gorm:"column:pet_id"`
	Notes     string    `gorm:"column:notes"`
	DateAdded time.Time `gorm:"column:date_added"`
}

func (favoriteRecord) TableName() string { return "favorites" }

func (r *Repository) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, errors.New("favorite is nil")
	}
	record := favoriteRecord{AdopterID: f.AdopterID, PetID: f.PetID, Notes: f.Notes, DateAdded: f.DateAdded}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		switch {
		case platformpostgres.IsUniqueViolation(err):
			return nil, ports.ErrDuplicate
		case platformpostgres.IsForeignKeyViolation(err):
			return nil, ports.ErrPetNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes string) (*domain.Favorite, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&favoriteRecord{}).
		Where("id = ?", id).
		Update("notes", strings.TrimSpace(notes))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) GetByPair(ctx context.Context, adopterID, petID int64) (*domain.Favorite, error) {
	return r.first(ctx, "adopter_id = ? AND pet_id = ?", adopterID, petID)
}

func (r *Repository) ListByAdopter(ctx context.Context, adopterID int64) ([]*domain.Favorite, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []favoriteRecord
	if err := r.db.WithContext(ctx).
		Where("adopter_id = ?", adopterID).
		Order("date_added DESC").Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*domain.Favorite, 0, len(records))
	for i := range records {
		list = append(list, records[i].toDomain())
	}
	return list, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.deleteWhere(ctx, true, "id = ?", id)
}

func (r *Repository) DeleteByPair(ctx context.Context, adopterID, petID int64) error {
	return r.deleteWhere(ctx, true, "adopter_id = ? AND pet_id = ?", adopterID, petID)
}

func (r *Repository) DeleteByPet(ctx context.Context, petID int64) error {
	return r.deleteWhere(ctx, false, "pet_id = ?", petID)
}

func (r *Repository) DeleteByAdopter(ctx context.Context, adopterID int64) error {
	return r.deleteWhere(ctx, false, "adopter_id = ?", adopterID)
}

func (r *Repository) CountByPet(ctx context.Context) (map[int64]int, error) {
	return r.countBy(ctx, "pet_id")
}

func (r *Repository) CountByAdopter(ctx context.Context) (map[int64]int, error) {
	return r.countBy(ctx, "adopter_id")
}

func (r *Repository) first(ctx context.Context, query string, args ...any) (*domain.Favorite, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record favoriteRecord
	if err := r.db.WithContext(ctx).Where(query, args...).First(&record).Error; err != nil {
		if platformpostgres.IsNotFound(err) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) deleteWhere(ctx context.Context, mustExist bool, query string, args ...any) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where(query, args...).Delete(&favoriteRecord{})
	if result.Error != nil {
		return result.Error
	}
	if mustExist && result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) countBy(ctx context.Context, column string) (map[int64]int, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []struct {
		GroupKey int64
		Total    int
	}
	if err := r.db.WithContext(ctx).Model(&favoriteRecord{}).
		Select(column + " AS group_key, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.GroupKey] = row.Total
	}
	return counts, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres favorite repository not configured")
	}
	return nil
}

func (r favoriteRecord) toDomain() *domain.Favorite {
	return &domain.Favorite{
		ID:        r.ID,
		AdopterID: r.AdopterID,
		PetID:     r.PetID,
		Notes:     r.Notes,
		DateAdded: r.DateAdded.UTC(),
	}
}
