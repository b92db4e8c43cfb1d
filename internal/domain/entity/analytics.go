package entity

// UnknownLabel replaces blank or missing gender and disease values in
// aggregate results.
const UnknownLabel = "Unknown"

// MonthCount is the number of visits in a calendar month formatted YYYY-MM.
type MonthCount struct {
	Month string `gorm:"column:month" json:"month"`
	Count int    `gorm:"column:count" json:"count"`
}

type GenderCount struct {
	Gender string `gorm:"column:gender" json:"gender"`
	Count  int    `gorm:"column:count" json:"count"`
}

type DiseaseCount struct {
	Disease string `gorm:"column:disease" json:"disease"`
	Count   int    `gorm:"column:count" json:"count"`
}

// Dashboard is the combined result of the four aggregate queries.
type Dashboard struct {
	PerMonth              []MonthCount   `json:"per_month"`
	GenderCounts          []GenderCount  `json:"gender_counts"`
	TopDiseases           []DiseaseCount `json:"top_diseases"`
	MostFrequentThisMonth *DiseaseCount  `json:"most_frequent_this_month"`
}
