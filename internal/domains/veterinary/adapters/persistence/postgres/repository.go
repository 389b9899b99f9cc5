package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists visits and vaccinations in PostgreSQL. Deleting a visit
// relies on the vaccinations foreign key cascade.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type visitRecord struct {
	ID            int64           `gorm:"primaryKey;column:id"`
	PetID         int64           `gorm:"column:pet_id"`
	VisitDate     datatypes.Date  `gorm:"column:visit_date"`
	Veterinarian  string          `gorm:"column:veterinarian"`
	VisitType     string          `gorm:"column:visit_type"`
	WeightKg      *float64        `gorm:"column:weight_kg"`
	TemperatureC  *float64        `gorm:"column:temperature_c"`
	Diagnosis     string          `gorm:"column:diagnosis"`
	Notes         string          `gorm:"column:notes"`
	ProcedureCost float64         `gorm:"column:procedure_cost"`
	NextVisitDate *datatypes.Date `gorm:"column:next_visit_date"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (visitRecord) TableName() string { return "vet_visits" }

type vaccinationRecord struct {
	ID               int64           `gorm:"primaryKey;column:id"`
	VisitID          int64           `gorm:"column:visit_id"`
	VaccineName      string          `gorm:"column:vaccine_name"`
	DateAdministered datatypes.Date  `gorm:"column:date_administered"`
	AdministeredBy   string          `gorm:"column:administered_by"`
	Manufacturer     string          `gorm:"column:manufacturer"`
	NextDueDate      *datatypes.Date `gorm:"column:next_due_date"`
	Site             string          `gorm:"column:site"`
	Reaction         string          `gorm:"column:reaction"`
	Cost             float64         `gorm:"column:cost"`
	Status           string          `gorm:"column:status"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (vaccinationRecord) TableName() string { return "vaccinations" }

func (r *Repository) CreateVisit(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	record := toVisitRecord(v)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if platformpostgres.IsForeignKeyViolation(err) {
			return nil, ports.ErrPetNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) UpdateVisit(ctx context.Context, id int64, mutate func(*domain.Visit) error) (*domain.Visit, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var out *domain.Visit
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record visitRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			return translate(err, ports.ErrVisitNotFound)
		}
		visit := record.toDomain()
		if err := mutate(visit); err != nil {
			return err
		}
		next := toVisitRecord(visit)
		if err := tx.Model(&visitRecord{}).Where("id = ?", id).Updates(map[string]any{
			"visit_date":      next.VisitDate,
			"veterinarian":    next.Veterinarian,
			"visit_type":      next.VisitType,
			"weight_kg":       next.WeightKg,
			"temperature_c":   next.TemperatureC,
			"diagnosis":       next.Diagnosis,
			"notes":           next.Notes,
			"procedure_cost":  next.ProcedureCost,
			"next_visit_date": next.NextVisitDate,
			"updated_at":      gorm.Expr("NOW()"),
		}).Error; err != nil {
			return err
		}
		visit.ID, visit.PetID = id, record.PetID
		out = visit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) GetVisit(ctx context.Context, id int64) (*domain.Visit, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record visitRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, ports.ErrVisitNotFound)
	}
	return record.toDomain(), nil
}

func (r *Repository) ListVisits(ctx context.Context, filter ports.VisitFilter) ([]*domain.Visit, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Model(&visitRecord{})
	if filter.PetID != 0 {
		query = query.Where("pet_id = ?", filter.PetID)
	}
	if filter.VisitType != "" {
		query = query.Where("visit_type = ?", string(filter.VisitType))
	}
	var records []visitRecord
	if err := query.Order("visit_date DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Visit, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

func (r *Repository) DeleteVisit(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&visitRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrVisitNotFound
	}
	return nil
}

func (r *Repository) DeleteByPet(ctx context.Context, petID int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&visitRecord{}).Error
}

func (r *Repository) CountVisits(ctx context.Context) (int, error) {
	return r.count(ctx, &visitRecord{})
}

func (r *Repository) CreateVaccination(ctx context.Context, v *domain.Vaccination) (*domain.Vaccination, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	record := toVaccinationRecord(v)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if platformpostgres.IsForeignKeyViolation(err) {
			return nil, ports.ErrVisitNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) UpdateVaccination(ctx context.Context, id int64, mutate func(*domain.Vaccination) error) (*domain.Vaccination, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var out *domain.Vaccination
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record vaccinationRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			return translate(err, ports.ErrVaccinationNotFound)
		}
		dose := record.toDomain()
		if err := mutate(dose); err != nil {
			return err
		}
		next := toVaccinationRecord(dose)
		if err := tx.Model(&vaccinationRecord{}).Where("id = ?", id).Updates(map[string]any{
			"vaccine_name":      next.VaccineName,
			"date_administered": next.DateAdministered,
			"administered_by":   next.AdministeredBy,
			"manufacturer":      next.Manufacturer,
			"next_due_date":     next.NextDueDate,
			"site":              next.Site,
			"reaction":          next.Reaction,
			"cost":              next.Cost,
			"status":            next.Status,
			"updated_at":        gorm.Expr("NOW()"),
		}).Error; err != nil {
			return err
		}
		dose.ID, dose.VisitID = id, record.VisitID
		out = dose
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) GetVaccination(ctx context.Context, id int64) (*domain.Vaccination, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record vaccinationRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, ports.ErrVaccinationNotFound)
	}
	return record.toDomain(), nil
}

func (r *Repository) ListVaccinations(ctx context.Context, filter ports.VaccinationFilter) ([]*domain.Vaccination, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Model(&vaccinationRecord{})
	if filter.PetID != 0 {
		query = query.
			Joins("JOIN vet_visits ON vet_visits.id = vaccinations.visit_id").
			Where("vet_visits.pet_id = ?", filter.PetID)
	}
	if filter.VisitID != 0 {
		query = query.Where("vaccinations.visit_id = ?", filter.VisitID)
	}
	if filter.Status != "" {
		query = query.Where("vaccinations.status = ?", string(filter.Status))
	}
	if filter.Outstanding {
		query = query.Where("vaccinations.status <> ?", string(domain.VaccinationCompleted))
	}
	if !filter.DueBefore.IsZero() {
		query = query.Where("vaccinations.next_due_date < ?", datatypes.Date(filter.DueBefore))
	}
	var records []vaccinationRecord
	if err := query.Select("vaccinations.*").
		Order("vaccinations.date_administered DESC").
		Order("vaccinations.id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Vaccination, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

func (r *Repository) DeleteVaccination(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&vaccinationRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrVaccinationNotFound
	}
	return nil
}

func (r *Repository) CountVaccinations(ctx context.Context) (int, error) {
	return r.count(ctx, &vaccinationRecord{})
}

func (r *Repository) count(ctx context.Context, model any) (int, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres veterinary repository not configured")
	}
	return nil
}

func translate(err, notFound error) error {
	if platformpostgres.IsNotFound(err) {
		return notFound
	}
	return err
}

func toVisitRecord(v *domain.Visit) visitRecord {
	return visitRecord{
		ID:            v.ID,
		PetID:         v.PetID,
		VisitDate:     datatypes.Date(v.VisitDate),
		Veterinarian:  v.Veterinarian,
		VisitType:     string(v.VisitType),
		WeightKg:      v.WeightKg,
		TemperatureC:  v.TemperatureC,
		Diagnosis:     v.Diagnosis,
		Notes:         v.Notes,
		ProcedureCost: v.ProcedureCost,
		NextVisitDate: toDate(v.NextVisitDate),
	}
}

func (r visitRecord) toDomain() *domain.Visit {
	return &domain.Visit{
		ID:            r.ID,
		PetID:         r.PetID,
		VisitDate:     time.Time(r.VisitDate).UTC(),
		Veterinarian:  r.Veterinarian,
		VisitType:     domain.VisitType(r.VisitType),
		WeightKg:      r.WeightKg,
		TemperatureC:  r.TemperatureC,
		Diagnosis:     r.Diagnosis,
		Notes:         r.Notes,
		ProcedureCost: r.ProcedureCost,
		NextVisitDate: fromDate(r.NextVisitDate),
	}
}

func toVaccinationRecord(v *domain.Vaccination) vaccinationRecord {
	return vaccinationRecord{
		ID:               v.ID,
		VisitID:          v.VisitID,
		VaccineName:      v.VaccineName,
		DateAdministered: datatypes.Date(v.DateAdministered),
		AdministeredBy:   v.AdministeredBy,
		Manufacturer:     v.Manufacturer,
		NextDueDate:      toDate(v.NextDueDate),
		Site:             v.Site,
		Reaction:         v.Reaction,
		Cost:             v.Cost,
		Status:           string(v.Status),
	}
}

func (r vaccinationRecord) toDomain() *domain.Vaccination {
	return &domain.Vaccination{
		ID:               r.ID,
		VisitID:          r.VisitID,
		VaccineName:      r.VaccineName,
		DateAdministered: time.Time(r.DateAdministered).UTC(),
		AdministeredBy:   r.AdministeredBy,
		Manufacturer:     r.Manufacturer,
		NextDueDate:      fromDate(r.NextDueDate),
		Site:             r.Site,
		Reaction:         r.Reaction,
		Cost:             r.Cost,
		Status:           domain.VaccinationStatus(r.Status),
	}
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d).UTC()
	return &t
}
