package repository

import (
	"errors"

	"hospital-records/internal/domain/entity"

	"gorm.io/gorm"
)

var (
	ErrStoreUnavailable    = errors.New("record store unavailable")
	ErrConstraintViolation = errors.New("record store constraint violation")
)

type PatientVisitRepository interface {
	Create(db *gorm.DB, visit *entity.PatientVisit) error
	FindAll(db *gorm.DB) ([]entity.PatientVisit, error)
	FindByID(db *gorm.DB, id int64) (*entity.PatientVisit, error)
	Update(db *gorm.DB, id int64, update entity.PatientVisitUpdate) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}

// VisitAnalyticsRepository holds the read-only aggregate queries behind the
// dashboard.
type VisitAnalyticsRepository interface {
	CountPerMonth(db *gorm.DB, months int) ([]entity.MonthCount, error)
	CountByGender(db *gorm.DB) ([]entity.GenderCount, error)
	TopDiseases(db *gorm.DB, limit int) ([]entity.DiseaseCount, error)
	MostFrequentDiseaseThisMonth(db *gorm.DB) (*entity.DiseaseCount, error)
}
