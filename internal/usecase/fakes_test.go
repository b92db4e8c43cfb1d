package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"hospital-records/config"
	"hospital-records/internal/domain/entity"
	"hospital-records/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a gorm handle that never connects; the fakes below
// ignore it, the usecases only need something to call WithContext on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret-key-for-unit-tests-only",
		Issuer:        "hospital-records-test",
		QRTokenExpiry: 30 * 24 * time.Hour,
	})
}

type fakeVisitRepo struct {
	mu     sync.Mutex
	nextID int64
	visits map[int64]entity.PatientVisit
	today  time.Time
	err    error
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{
		visits: make(map[int64]entity.PatientVisit),
		today:  time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeVisitRepo) Create(db *gorm.DB, visit *entity.PatientVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	visit.PatientID = r.nextID
	visit.VisitDate = datatypes.Date(r.today)
	r.visits[visit.PatientID] = *visit
	return nil
}

func (r *fakeVisitRepo) FindAll(db *gorm.DB) ([]entity.PatientVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	visits := make([]entity.PatientVisit, 0, len(r.visits))
	for _, v := range r.visits {
		visits = append(visits, v)
	}
	sort.Slice(visits, func(i, j int) bool { return visits[i].PatientID > visits[j].PatientID })
	return visits, nil
}

func (r *fakeVisitRepo) FindByID(db *gorm.DB, id int64) (*entity.PatientVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	v, ok := r.visits[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *fakeVisitRepo) Update(db *gorm.DB, id int64, update entity.PatientVisitUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	v, ok := r.visits[id]
	if !ok {
		return 0, nil
	}
	v.PatientName = update.PatientName
	v.Gender = update.Gender
	v.Age = update.Age
	v.Disease = update.Disease
	v.Priority = update.Priority
	v.TimeSlot = update.TimeSlot
	v.BloodPressure = update.BloodPressure
	v.Temperature = update.Temperature
	v.WeightKg = update.WeightKg
	v.PhoneNumber = update.PhoneNumber
	r.visits[id] = v
	return 1, nil
}

func (r *fakeVisitRepo) Delete(db *gorm.DB, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.visits[id]; !ok {
		return 0, nil
	}
	delete(r.visits, id)
	return 1, nil
}

type fakeAnalyticsRepo struct {
	perMonth     []entity.MonthCount
	genders      []entity.GenderCount
	diseases     []entity.DiseaseCount
	topThisMonth *entity.DiseaseCount

	failGender bool
	err        error

	// duringLoad runs inside CountPerMonth, while the dashboard is loading.
	duringLoad func()

	mu        sync.Mutex
	calls     int
	gotMonths int
	gotLimit  int
}

func (r *fakeAnalyticsRepo) record(f func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	f()
}

func (r *fakeAnalyticsRepo) CountPerMonth(db *gorm.DB, months int) ([]entity.MonthCount, error) {
	r.record(func() { r.gotMonths = months })
	if r.duringLoad != nil {
		r.duringLoad()
	}
	return r.perMonth, nil
}

func (r *fakeAnalyticsRepo) CountByGender(db *gorm.DB) ([]entity.GenderCount, error) {
	r.record(func() {})
	if r.failGender {
		return nil, r.err
	}
	return r.genders, nil
}

func (r *fakeAnalyticsRepo) TopDiseases(db *gorm.DB, limit int) ([]entity.DiseaseCount, error) {
	r.record(func() { r.gotLimit = limit })
	return r.diseases, nil
}

func (r *fakeAnalyticsRepo) MostFrequentDiseaseThisMonth(db *gorm.DB) (*entity.DiseaseCount, error) {
	r.record(func() {})
	return r.topThisMonth, nil
}

// fakeCache mirrors the generation semantics of the Redis cache.
type fakeCache struct {
	mu          sync.Mutex
	generation  int64
	snapshots   map[int64]*entity.Dashboard
	sets        int
	invalidated int
}

func (c *fakeCache) Get(ctx context.Context) (*entity.Dashboard, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	dashboard, ok := c.snapshots[c.generation]
	return dashboard, c.generation, ok
}

func (c *fakeCache) Set(ctx context.Context, generation int64, dashboard *entity.Dashboard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshots == nil {
		c.snapshots = make(map[int64]*entity.Dashboard)
	}
	c.snapshots[generation] = dashboard
	c.sets++
}

func (c *fakeCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.invalidated++
}
