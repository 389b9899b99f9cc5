package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

var (
	_ ports.Repository = (*Store)(nil)
	_ ports.UnitOfWork = (*Store)(nil)
)

// Store persists adoptions in PostgreSQL. Units of work lock the adoption and
// pet rows they touch with SELECT ... FOR UPDATE.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

type adoptionRecord struct {
	ID              int64           `gorm:"primaryKey;column:id"`
	PetID           int64           `gorm:"column:pet_id"`
	AdopterID       int64           `gorm:"column:adopter_id"`
	ApplicationDate time.Time       `gorm:"column:application_date"`
	AdoptionDate    *datatypes.Date `gorm:"column:adoption_date"`
	Fee             float64         `gorm:"column:adoption_fee"`
	ContractSigned  bool            `gorm:"column:contract_signed"`
	Notes           string          `gorm:"column:notes"`
	Status          string          `gorm:"column:status"`
	ApprovalStatus  string          `gorm:"column:approval_status"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (adoptionRecord) TableName() string { return "adoptions" }

// petStatusRecord maps only the columns of the pets table that transitions write.
type petStatusRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Status    string    `gorm:"column:status"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (petStatusRecord) TableName() string { return "pets" }

var heldStatuses = []string{string(domain.StatusPending), string(domain.StatusApplied), string(domain.StatusCompleted)}

func (s *Store) Do(ctx context.Context, fn func(tx ports.Tx) error) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(&gormTx{db: db})
	})
}

func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Adoption, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var record adoptionRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, ports.ErrNotFound)
	}
	return record.toDomain(), nil
}

func (s *Store) List(ctx context.Context, filter ports.Filter) ([]*domain.Adoption, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	query := s.db.WithContext(ctx).Model(&adoptionRecord{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", string(filter.ApprovalStatus))
	}
	if filter.AdopterID != 0 {
		query = query.Where("adopter_id = ?", filter.AdopterID)
	}
	if filter.PetID != 0 {
		query = query.Where("pet_id = ?", filter.PetID)
	}
	var records []adoptionRecord
	if err := query.Order("created_at DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (s *Store) CountByAdopter(ctx context.Context) (map[int64]int, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var rows []struct {
		AdopterID int64
		Total     int
	}
	if err := s.db.WithContext(ctx).Model(&adoptionRecord{}).
		Select("adopter_id, COUNT(*) AS total").
		Group("adopter_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.AdopterID] = row.Total
	}
	return counts, nil
}

// MonthlyStats aggregates in SQL. Revenue and the average fee only count
// Completed adoptions.
func (s *Store) MonthlyStats(ctx context.Context, from, to time.Time) (domain.MonthlyStats, error) {
	stats := domain.MonthlyStats{Year: from.Year(), Month: from.Month()}
	if err := s.ensureDB(); err != nil {
		return stats, err
	}
	var row struct {
		Total        int
		Completed    int
		Pending      int
		Cancelled    int
		Returned     int
		TotalRevenue float64
	}
	if err := s.db.WithContext(ctx).Model(&adoptionRecord{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS completed,
			COUNT(*) FILTER (WHERE status IN ?) AS pending,
			COUNT(*) FILTER (WHERE status = ?) AS cancelled,
			COUNT(*) FILTER (WHERE status = ?) AS returned,
			COALESCE(SUM(adoption_fee) FILTER (WHERE status = ?), 0) AS total_revenue`,
			string(domain.StatusCompleted),
			[]string{string(domain.StatusPending), string(domain.StatusApplied)},
			string(domain.StatusCancelled),
			string(domain.StatusReturned),
			string(domain.StatusCompleted),
		).
		Where("application_date >= ? AND application_date < ?", from, to).
		Scan(&row).Error; err != nil {
		return stats, err
	}
	stats.Total = row.Total
	stats.Completed = row.Completed
	stats.Pending = row.Pending
	stats.Cancelled = row.Cancelled
	stats.Returned = row.Returned
	stats.TotalRevenue = row.TotalRevenue
	stats.Finish()
	return stats, nil
}

func (s *Store) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres adoption store not configured")
	}
	return nil
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) locked() *gorm.DB {
	return t.db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (t *gormTx) PetStatus(_ context.Context, petID int64) (petdomain.Status, error) {
	var record petStatusRecord
	if err := t.locked().Select("id", "status").First(&record, "id = ?", petID).Error; err != nil {
		return "", translate(err, ports.ErrPetNotFound)
	}
	return petdomain.Status(record.Status), nil
}

func (t *gormTx) SetPetStatus(_ context.Context, petID int64, status petdomain.Status) error {
	if !status.Valid() {
		return petdomain.ErrInvalidStatus
	}
	result := t.db.Model(&petStatusRecord{}).Where("id = ?", petID).Updates(map[string]any{
		"status":     string(status),
		"updated_at": gorm.Expr("NOW()"),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrPetNotFound
	}
	return nil
}

func (t *gormTx) Get(_ context.Context, id int64) (*domain.Adoption, error) {
	var record adoptionRecord
	if err := t.locked().First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, ports.ErrNotFound)
	}
	return record.toDomain(), nil
}

func (t *gormTx) Create(_ context.Context, a *domain.Adoption) (*domain.Adoption, error) {
	record := toRecord(a)
	record.ID = 0
	if err := t.db.Create(&record).Error; err != nil {
		if platformpostgres.IsForeignKeyViolation(err) {
			return nil, ports.ErrAdopterNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (t *gormTx) Save(_ context.Context, a *domain.Adoption) error {
	record := toRecord(a)
	result := t.db.Model(&adoptionRecord{}).Where("id = ?", a.ID).Updates(map[string]any{
		"adoption_date":   record.AdoptionDate,
		"adoption_fee":    record.Fee,
		"contract_signed": record.ContractSigned,
		"notes":           record.Notes,
		"status":          record.Status,
		"approval_status": record.ApprovalStatus,
		"updated_at":      gorm.Expr("NOW()"),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (t *gormTx) Delete(_ context.Context, id int64) error {
	return t.db.Delete(&adoptionRecord{}, id).Error
}

func (t *gormTx) OtherHolders(_ context.Context, petID, excludeID int64) (int, error) {
	var n int64
	if err := t.db.Model(&adoptionRecord{}).
		Where("pet_id = ? AND id <> ? AND status IN ?", petID, excludeID, heldStatuses).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (t *gormTx) ByAdopter(_ context.Context, adopterID int64) ([]*domain.Adoption, error) {
	var records []adoptionRecord
	if err := t.locked().Where("adopter_id = ?", adopterID).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func translate(err, notFound error) error {
	if platformpostgres.IsNotFound(err) {
		return notFound
	}
	return err
}

func toRecord(a *domain.Adoption) adoptionRecord {
	record := adoptionRecord{
		ID:              a.ID,
		PetID:           a.PetID,
		AdopterID:       a.AdopterID,
		ApplicationDate: a.ApplicationDate,
		Fee:             a.Fee,
		ContractSigned:  a.ContractSigned,
		Notes:           a.Notes,
		Status:          string(a.Status),
		ApprovalStatus:  string(a.ApprovalStatus),
	}
	if a.AdoptionDate != nil {
		d := datatypes.Date(*a.AdoptionDate)
		record.AdoptionDate = &d
	}
	return record
}

func (r adoptionRecord) toDomain() *domain.Adoption {
	a := &domain.Adoption{
		ID:              r.ID,
		PetID:           r.PetID,
		AdopterID:       r.AdopterID,
		ApplicationDate: r.ApplicationDate.UTC(),
		Fee:             r.Fee,
		ContractSigned:  r.ContractSigned,
		Notes:           r.Notes,
		Status:          domain.Status(r.Status),
		ApprovalStatus:  domain.ApprovalStatus(r.ApprovalStatus),
	}
	if r.AdoptionDate != nil {
		d := time.Time(*r.AdoptionDate).UTC()
		a.AdoptionDate = &d
	}
	return a
}

func toDomainList(records []adoptionRecord) []*domain.Adoption {
	out := make([]*domain.Adoption, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out
}
