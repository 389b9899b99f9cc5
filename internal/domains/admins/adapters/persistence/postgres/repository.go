package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists admin accounts in PostgreSQL.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type adminRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	FullName     string    `gorm:"column:full_name"`
	Role         string    `gorm:"column:role"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminRecord) TableName() string { return "admins" }

func (r *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errors.New("admin is nil")
	}
	if err := admin.Validate(); err != nil {
		return nil, err
	}
	record := adminRecord{
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		FullName:     admin.FullName,
		Role:         string(admin.Role),
		IsActive:     admin.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, id int64, mutate func(*domain.Admin) error) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var updated *domain.Admin
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record adminRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		admin := record.toDomain()
		if err := mutate(admin); err != nil {
			return err
		}
		if err := admin.Validate(); err != nil {
			return err
		}
		if err := tx.Model(&adminRecord{}).Where("id = ?", id).Updates(map[string]any{
			"email":         admin.Email,
			"password_hash": admin.PasswordHash,
			"full_name":     admin.FullName,
			"role":          string(admin.Role),
			"is_active":     admin.IsActive,
			"updated_at":    gorm.Expr("NOW()"),
		}).Error; err != nil {
			return translate(err)
		}
		admin.ID, admin.CreatedAt = record.ID, record.CreatedAt
		updated = admin
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.first(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *Repository) List(ctx context.Context) ([]*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []adminRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Admin, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&adminRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repository) first(ctx context.Context, query string, arg any) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record adminRecord
	if err := r.db.WithContext(ctx).First(&record, query, arg).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres admin repository not configured")
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

func (r adminRecord) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FullName:     r.FullName,
		Role:         domain.Role(r.Role),
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}
