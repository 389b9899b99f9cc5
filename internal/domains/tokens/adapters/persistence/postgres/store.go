package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/ports"
)

// Store persists token revocations in PostgreSQL. Caller owns the DB lifecycle.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

type revocationRecord struct {
	TokenID   string    `gorm:"primaryKey;column:token_id;size:64"`
	Subject   string    `gorm:"column:subject;size:255;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (revocationRecord) TableName() string { return "token_revocations" }

// Revoke inserts the revocation, ignoring a repeat of the same token id.
func (s *Store) Revoke(ctx context.Context, rev *domain.Revocation) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if rev == nil {
		return errors.New("cannot store nil revocation")
	}
	rec := revocationRecord{TokenID: rev.TokenID, Subject: rev.Subject, ExpiresAt: rev.ExpiresAt}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_id"}},
			DoNothing: true,
		}).
		Create(&rec).Error
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if err := s.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&revocationRecord{}).Where("token_id = ?", tokenID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeExpired removes revocations whose tokens can no longer be presented.
func (s *Store) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&revocationRecord{})
	return result.RowsAffected, result.Error
}

func (s *Store) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres token store not configured")
	}
	return nil
}

var _ ports.Store = (*Store)(nil)
