package repository

import (
	"errors"
	"fmt"

	"hospital-records/internal/domain/entity"
	domainRepo "hospital-records/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE class 23 covers integrity constraint violations.
const integrityConstraintClass = "23"

type patientVisitRepository struct{}

func NewPatientVisitRepository() domainRepo.PatientVisitRepository {
	return &patientVisitRepository{}
}

func (r *patientVisitRepository) Create(db *gorm.DB, visit *entity.PatientVisit) error {
	return classifyError(db.Create(visit).Error)
}

func (r *patientVisitRepository) FindAll(db *gorm.DB) ([]entity.PatientVisit, error) {
	var visits []entity.PatientVisit
	err := db.Order("patient_id DESC").Find(&visits).Error
	if err != nil {
		return nil, classifyError(err)
	}
	return visits, nil
}

func (r *patientVisitRepository) FindByID(db *gorm.DB, id int64) (*entity.PatientVisit, error) {
	var visit entity.PatientVisit
	err := db.Where("patient_id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, classifyError(err)
	}
	return &visit, nil
}

// Update overwrites every editable column of one visit. The doctor columns
// are never part of the statement.
func (r *patientVisitRepository) Update(db *gorm.DB, id int64, update entity.PatientVisitUpdate) (int64, error) {
	result := db.Model(&entity.PatientVisit{}).
		Where("patient_id = ?", id).
		Updates(update.Columns())
	return result.RowsAffected, classifyError(result.Error)
}

func (r *patientVisitRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("patient_id = ?", id).Delete(&entity.PatientVisit{})
	return result.RowsAffected, classifyError(result.Error)
}

// classifyError maps driver errors onto the store error kinds. Neither kind
// is retried here.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityConstraintClass {
		return fmt.Errorf("%w: %s (%s): %v", domainRepo.ErrConstraintViolation, pgErr.ConstraintName, pgErr.Code, err)
	}

	return fmt.Errorf("%w: %v", domainRepo.ErrStoreUnavailable, err)
}
