package handler

import (
	"net/http"

	"hospital-records/internal/usecase"
	"hospital-records/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analyticsUsecase.GetDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching analytics")
		return
	}

	response.Success(w, http.StatusOK, "Analytics retrieved successfully", dashboard)
}
