package repository

import (
	"hospital-records/internal/domain/entity"
	domainRepo "hospital-records/internal/domain/repository"

	"gorm.io/gorm"
)

// Blank and NULL values are folded into one "Unknown" group by grouping on
// the normalized expression rather than the raw column.
const (
	normalizedGender  = "COALESCE(NULLIF(TRIM(gender), ''), ?)"
	normalizedDisease = "COALESCE(NULLIF(TRIM(disease), ''), ?)"
)

const countPerMonthQuery = `
	SELECT to_char(date_trunc('month', visit_date), 'YYYY-MM') AS month,
	       COUNT(*)::int AS count
	FROM patients
	WHERE visit_date IS NOT NULL
	  AND visit_date >= (date_trunc('month', CURRENT_DATE) - make_interval(months => ?))
	GROUP BY 1
	ORDER BY 1`

const countByGenderQuery = `
	SELECT ` + normalizedGender + ` AS gender,
	       COUNT(*)::int AS count
	FROM patients
	GROUP BY 1
	ORDER BY count DESC, gender`

const topDiseasesQuery = `
	SELECT ` + normalizedDisease + ` AS disease,
	       COUNT(*)::int AS count
	FROM patients
	GROUP BY 1
	ORDER BY count DESC, disease
	LIMIT ?`

const mostFrequentThisMonthQuery = `
	SELECT ` + normalizedDisease + ` AS disease,
	       COUNT(*)::int AS count
	FROM patients
	WHERE date_trunc('month', visit_date) = date_trunc('month', CURRENT_DATE)
	GROUP BY 1
	ORDER BY count DESC, disease
	LIMIT 1`

type visitAnalyticsRepository struct{}

func NewVisitAnalyticsRepository() domainRepo.VisitAnalyticsRepository {
	return &visitAnalyticsRepository{}
}

// CountPerMonth counts visits for the current month and the months-1 months
// before it, ascending by month.
func (r *visitAnalyticsRepository) CountPerMonth(db *gorm.DB, months int) ([]entity.MonthCount, error) {
	var rows []entity.MonthCount
	if err := db.Raw(countPerMonthQuery, months-1).Scan(&rows).Error; err != nil {
		return nil, classifyError(err)
	}
	return rows, nil
}

func (r *visitAnalyticsRepository) CountByGender(db *gorm.DB) ([]entity.GenderCount, error) {
	var rows []entity.GenderCount
	if err := db.Raw(countByGenderQuery, entity.UnknownLabel).Scan(&rows).Error; err != nil {
		return nil, classifyError(err)
	}
	return rows, nil
}

func (r *visitAnalyticsRepository) TopDiseases(db *gorm.DB, limit int) ([]entity.DiseaseCount, error) {
	var rows []entity.DiseaseCount
	if err := db.Raw(topDiseasesQuery, entity.UnknownLabel, limit).Scan(&rows).Error; err != nil {
		return nil, classifyError(err)
	}
	return rows, nil
}

// MostFrequentDiseaseThisMonth returns nil when there are no visits this
// calendar month.
func (r *visitAnalyticsRepository) MostFrequentDiseaseThisMonth(db *gorm.DB) (*entity.DiseaseCount, error) {
	var rows []entity.DiseaseCount
	if err := db.Raw(mostFrequentThisMonthQuery, entity.UnknownLabel).Scan(&rows).Error; err != nil {
		return nil, classifyError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
