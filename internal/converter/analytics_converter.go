package converter

import (
	"hospital-records/internal/delivery/dto"
	"hospital-records/internal/domain/entity"
)

// DashboardToResponse converts the aggregate results, turning nil slices
// into empty ones.
func DashboardToResponse(dashboard *entity.Dashboard) *dto.AnalyticsResponse {
	response := &dto.AnalyticsResponse{
		TotalPerMonth:       make([]dto.MonthCountResponse, 0, len(dashboard.PerMonth)),
		GenderCounts:        make([]dto.GenderCountResponse, 0, len(dashboard.GenderCounts)),
		DiseaseDistribution: make([]dto.DiseaseCountResponse, 0, len(dashboard.TopDiseases)),
	}

	for _, m := range dashboard.PerMonth {
		response.TotalPerMonth = append(response.TotalPerMonth, dto.MonthCountResponse{Month: m.Month, Count: m.Count})
	}
	for _, g := range dashboard.GenderCounts {
		response.GenderCounts = append(response.GenderCounts, dto.GenderCountResponse{Gender: g.Gender, Count: g.Count})
	}
	for _, d := range dashboard.TopDiseases {
		response.DiseaseDistribution = append(response.DiseaseDistribution, dto.DiseaseCountResponse{Disease: d.Disease, Count: d.Count})
	}
	if top := dashboard.MostFrequentThisMonth; top != nil {
		response.MostFrequentThisMonth = &dto.DiseaseCountResponse{Disease: top.Disease, Count: top.Count}
	}

	return response
}
