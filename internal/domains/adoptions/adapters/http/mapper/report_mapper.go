package mapper

import (
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// ReportRow is one line of the back office adoption report.
type ReportRow struct {
	AdoptionID      int64     `json:"adoptionId"`
	ApplicationDate time.Time `json:"applicationDate"`
	PetName         string    `json:"petName"`
	Species         string    `json:"species"`
	Breed           string    `json:"breed,omitempty"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	HousingType     string    `json:"housingType,omitempty"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	Fee             float64   `json:"adoptionFee"`
	Status          string    `json:"status"`
	AdoptionDate    *string   `json:"adoptionDate,omitempty"`
	ContractSigned  bool      `json:"contractSigned"`
}

type MonthlyStats struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	TotalAdoptions int     `json:"totalAdoptions"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Cancelled      int     `json:"cancelled"`
	Returned       int     `json:"returned"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgFee         float64 `json:"avgFee"`
}

func FromReport(views []domain.View) []ReportRow {
	out := make([]ReportRow, 0, len(views))
	for _, v := range views {
		a := v.Adoption
		out = append(out, ReportRow{
			AdoptionID:      a.ID,
			ApplicationDate: a.ApplicationDate,
			PetName:         v.Pet.Name,
			Species:         v.Pet.Species,
			Breed:           v.Pet.Breed,
			FullName:        v.Adopter.FullName,
			Email:           v.Adopter.Email,
			HousingType:     v.Adopter.HousingType,
			ExperienceLevel: v.Adopter.ExperienceLevel,
			Fee:             a.Fee,
			Status:          string(a.Status),
			AdoptionDate:    dates.FormatPtr(a.AdoptionDate),
			ContractSigned:  a.ContractSigned,
		})
	}
	return out
}

func FromMonthlyStats(s domain.MonthlyStats) MonthlyStats {
	return MonthlyStats{
		Year:           s.Year,
		Month:          int(s.Month),
		TotalAdoptions: s.Total,
		Completed:      s.Completed,
		Pending:        s.Pending,
		Cancelled:      s.Cancelled,
		Returned:       s.Returned,
		TotalRevenue:   s.TotalRevenue,
		AvgFee:         s.AvgFee,
	}
}
