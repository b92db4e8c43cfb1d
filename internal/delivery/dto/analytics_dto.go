package dto

type MonthCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type GenderCountResponse struct {
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

type DiseaseCountResponse struct {
	Disease string `json:"disease"`
	Count   int    `json:"count"`
}

// AnalyticsResponse never carries null arrays; an empty store yields empty
// lists and a null most_frequent_this_month.
type AnalyticsResponse struct {
	TotalPerMonth         []MonthCountResponse   `json:"total_per_month"`
	GenderCounts          []GenderCountResponse  `json:"gender_counts"`
	DiseaseDistribution   []DiseaseCountResponse `json:"disease_distribution"`
	MostFrequentThisMonth *DiseaseCountResponse  `json:"most_frequent_this_month"`
}
