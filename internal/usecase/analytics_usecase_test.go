package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hospital-records/internal/domain/entity"
	domainRepo "hospital-records/internal/domain/repository"
)

func TestGetDashboard_EmptyStore(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := NewAnalyticsUsecase(newTestDB(t), newTestLogger(), repo, &fakeCache{})

	resp, err := uc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"total_per_month":[],"gender_counts":[],"disease_distribution":[],"most_frequent_this_month":null}`
	if string(raw) != want {
		t.Errorf("expected %s, got %s", want, raw)
	}
}

func TestGetDashboard_CombinesAllQueries(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		perMonth: []entity.MonthCount{{Month: "2026-09", Count: 4}, {Month: "2026-10", Count: 2}},
		genders:  []entity.GenderCount{{Gender: "Female", Count: 3}, {Gender: entity.UnknownLabel, Count: 3}},
		diseases: []entity.DiseaseCount{{Disease: "fever", Count: 5}, {Disease: entity.UnknownLabel, Count: 1}},
		topThisMonth: &entity.DiseaseCount{
			Disease: "fever",
			Count:   2,
		},
	}
	uc := NewAnalyticsUsecase(newTestDB(t), newTestLogger(), repo, &fakeCache{})

	resp, err := uc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.calls != 4 {
		t.Errorf("expected 4 queries, got %d", repo.calls)
	}
	if repo.gotMonths != 12 || repo.gotLimit != 10 {
		t.Errorf("expected 12 months and top 10, got %d and %d", repo.gotMonths, repo.gotLimit)
	}
	if len(resp.TotalPerMonth) != 2 || resp.TotalPerMonth[0].Month != "2026-09" {
		t.Errorf("unexpected per-month result: %+v", resp.TotalPerMonth)
	}
	if len(resp.GenderCounts) != 2 || len(resp.DiseaseDistribution) != 2 {
		t.Errorf("unexpected grouping results: %+v %+v", resp.GenderCounts, resp.DiseaseDistribution)
	}
	for _, g := range resp.GenderCounts {
		if g.Gender == "" {
			t.Error("expected no empty gender group")
		}
	}
	if resp.MostFrequentThisMonth == nil || resp.MostFrequentThisMonth.Disease != "fever" {
		t.Errorf("unexpected most frequent: %+v", resp.MostFrequentThisMonth)
	}
}

func TestGetDashboard_OneFailureFailsAll(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		perMonth:   []entity.MonthCount{{Month: "2026-10", Count: 1}},
		failGender: true,
		err:        domainRepo.ErrStoreUnavailable,
	}
	cache := &fakeCache{}
	uc := NewAnalyticsUsecase(newTestDB(t), newTestLogger(), repo, cache)

	resp, err := uc.GetDashboard(context.Background())
	if !errors.Is(err, domainRepo.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if resp != nil {
		t.Error("expected no partial dashboard")
	}
	if cache.sets != 0 {
		t.Error("expected failed dashboard not to be cached")
	}
}

func TestGetDashboard_ServesFromCache(t *testing.T) {
	repo := &fakeAnalyticsRepo{genders: []entity.GenderCount{{Gender: "Male", Count: 1}}}
	cache := &fakeCache{}
	uc := NewAnalyticsUsecase(newTestDB(t), newTestLogger(), repo, cache)

	if _, err := uc.GetDashboard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected dashboard to be cached, got %d sets", cache.sets)
	}

	resp, err := uc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 4 {
		t.Errorf("expected cached dashboard to skip queries, got %d calls", repo.calls)
	}
	if len(resp.GenderCounts) != 1 || resp.GenderCounts[0].Gender != "Male" {
		t.Errorf("unexpected cached result: %+v", resp.GenderCounts)
	}
}

func TestGetDashboard_WriteDuringLoadIsNotCachedStale(t *testing.T) {
	repo := &fakeAnalyticsRepo{genders: []entity.GenderCount{{Gender: "Male", Count: 1}}}
	cache := &fakeCache{}
	uc := NewAnalyticsUsecase(newTestDB(t), newTestLogger(), repo, cache)

	// A visit is created while the first dashboard is being assembled.
	writes := 0
	repo.duringLoad = func() {
		if writes == 0 {
			writes++
			cache.Invalidate(context.Background())
		}
	}

	if _, err := uc.GetDashboard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected the loaded dashboard to be stored, got %d sets", cache.sets)
	}

	if _, err := uc.GetDashboard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 8 {
		t.Errorf("expected the pre-write snapshot to be skipped and the dashboard reloaded, got %d queries", repo.calls)
	}

	if _, err := uc.GetDashboard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 8 {
		t.Errorf("expected the post-write snapshot to be served from cache, got %d queries", repo.calls)
	}
}
