package usecase

import (
	"context"
	"errors"

	"hospital-records/internal/converter"
	"hospital-records/internal/delivery/dto"
	"hospital-records/internal/domain/repository"
	"hospital-records/internal/service"
	"hospital-records/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientVisitNotFound = errors.New("patient visit not found")
)

type PatientVisitUsecase interface {
	CreateVisit(ctx context.Context, req *dto.CreatePatientVisitRequest) (*dto.CreatePatientVisitResponse, error)
	GetAllVisits(ctx context.Context) (*dto.PatientVisitListResponse, error)
	GetVisit(ctx context.Context, id int64) (*dto.PatientVisitResponse, error)
	UpdateVisit(ctx context.Context, id int64, req *dto.UpdatePatientVisitRequest) error
	DeleteVisit(ctx context.Context, id int64) error
}

type patientVisitUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	visitRepo      repository.PatientVisitRepository
	jwtService     *jwt.JWTService
	analyticsCache service.AnalyticsCache
}

func NewPatientVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.PatientVisitRepository,
	jwtService *jwt.JWTService,
	analyticsCache service.AnalyticsCache,
) PatientVisitUsecase {
	return &patientVisitUsecase{
		db:             db,
		log:            log,
		visitRepo:      visitRepo,
		jwtService:     jwtService,
		analyticsCache: analyticsCache,
	}
}

// CreateVisit stores a new visit and returns its QR token.
//
// The doctor is assigned here, once, from the disease given at intake. Later
// updates keep that assignment even when the disease changes.
func (u *patientVisitUsecase) CreateVisit(ctx context.Context, req *dto.CreatePatientVisitRequest) (*dto.CreatePatientVisitResponse, error) {
	visit := converter.CreateRequestToPatientVisit(req)
	visit.AssignDoctor(service.AssignDoctor(req.Disease))

	if err := u.visitRepo.Create(u.db.WithContext(ctx), visit); err != nil {
		u.log.Errorf("Failed to insert patient visit: %+v", err)
		return nil, err
	}

	token, err := u.jwtService.GenerateAppointmentToken(visit.PatientID)
	if err != nil {
		u.log.Errorf("Failed to sign QR token for patient %d: %+v", visit.PatientID, err)
		return nil, err
	}

	u.analyticsCache.Invalidate(ctx)

	u.log.WithFields(logrus.Fields{
		"patient_id": visit.PatientID,
		"doctor":     visit.DoctorName,
	}).Info("Patient visit created")

	return converter.PatientVisitToCreateResponse(visit, token), nil
}

func (u *patientVisitUsecase) GetAllVisits(ctx context.Context) (*dto.PatientVisitListResponse, error) {
	visits, err := u.visitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patient visits: %+v", err)
		return nil, err
	}

	return &dto.PatientVisitListResponse{
		Patients: converter.PatientVisitsToResponses(visits),
		Total:    len(visits),
	}, nil
}

func (u *patientVisitUsecase) GetVisit(ctx context.Context, id int64) (*dto.PatientVisitResponse, error) {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient visit %d: %+v", id, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrPatientVisitNotFound
	}

	return converter.PatientVisitToResponse(visit), nil
}

// UpdateVisit overwrites the editable fields of a visit. Concurrent updates
// to the same visit are not coordinated; the last write wins.
func (u *patientVisitUsecase) UpdateVisit(ctx context.Context, id int64, req *dto.UpdatePatientVisitRequest) error {
	affected, err := u.visitRepo.Update(u.db.WithContext(ctx), id, converter.UpdateRequestToPatientVisitUpdate(req))
	if err != nil {
		u.log.Warnf("Failed to update patient visit %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientVisitNotFound
	}

	u.analyticsCache.Invalidate(ctx)

	u.log.Infof("Patient visit updated: id=%d", id)
	return nil
}

// DeleteVisit removes a visit permanently. Deleting an id that does not
// exist is not an error.
func (u *patientVisitUsecase) DeleteVisit(ctx context.Context, id int64) error {
	affected, err := u.visitRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete patient visit %d: %+v", id, err)
		return err
	}

	u.analyticsCache.Invalidate(ctx)

	u.log.Infof("Patient visit deleted: id=%d, affected=%d", id, affected)
	return nil
}
