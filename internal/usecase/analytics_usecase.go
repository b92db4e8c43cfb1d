package usecase

import (
	"context"

	"hospital-records/internal/converter"
	"hospital-records/internal/delivery/dto"
	"hospital-records/internal/domain/entity"
	"hospital-records/internal/domain/repository"
	"hospital-records/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	dashboardMonths = 12
	topDiseaseLimit = 10
)

type AnalyticsUsecase interface {
	GetDashboard(ctx context.Context) (*dto.AnalyticsResponse, error)
}

type analyticsUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	analyticsRepo  repository.VisitAnalyticsRepository
	analyticsCache service.AnalyticsCache
}

func NewAnalyticsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	analyticsRepo repository.VisitAnalyticsRepository,
	analyticsCache service.AnalyticsCache,
) AnalyticsUsecase {
	return &analyticsUsecase{
		db:             db,
		log:            log,
		analyticsRepo:  analyticsRepo,
		analyticsCache: analyticsCache,
	}
}

func (u *analyticsUsecase) GetDashboard(ctx context.Context) (*dto.AnalyticsResponse, error) {
	cached, generation, ok := u.analyticsCache.Get(ctx)
	if ok {
		return converter.DashboardToResponse(cached), nil
	}

	dashboard, err := u.loadDashboard(ctx)
	if err != nil {
		u.log.Errorf("Failed to load analytics dashboard: %+v", err)
		return nil, err
	}

	// Stored under the generation seen before loading: a write that landed
	// meanwhile has moved the cache on and this snapshot is never served.
	u.analyticsCache.Set(ctx, generation, dashboard)

	return converter.DashboardToResponse(dashboard), nil
}

// loadDashboard runs the four aggregate queries concurrently. They succeed
// or fail together: the dashboard is never returned with a section missing,
// and the first failure cancels the queries still running.
func (u *analyticsUsecase) loadDashboard(ctx context.Context) (*entity.Dashboard, error) {
	var dashboard entity.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := u.analyticsRepo.CountPerMonth(u.db.WithContext(gctx), dashboardMonths)
		dashboard.PerMonth = rows
		return err
	})
	g.Go(func() error {
		rows, err := u.analyticsRepo.CountByGender(u.db.WithContext(gctx))
		dashboard.GenderCounts = rows
		return err
	})
	g.Go(func() error {
		rows, err := u.analyticsRepo.TopDiseases(u.db.WithContext(gctx), topDiseaseLimit)
		dashboard.TopDiseases = rows
		return err
	})
	g.Go(func() error {
		top, err := u.analyticsRepo.MostFrequentDiseaseThisMonth(u.db.WithContext(gctx))
		dashboard.MostFrequentThisMonth = top
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
