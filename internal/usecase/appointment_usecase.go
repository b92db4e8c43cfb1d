package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-records/internal/converter"
	"hospital-records/internal/delivery/dto"
	"hospital-records/internal/domain/repository"
	"hospital-records/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMissingToken        = errors.New("missing token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrMalformedPayload    = errors.New("token payload has no patient id")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	ResolveAppointment(ctx context.Context, token string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	visitRepo  repository.PatientVisitRepository
	jwtService *jwt.JWTService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.PatientVisitRepository,
	jwtService *jwt.JWTService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:         db,
		log:        log,
		visitRepo:  visitRepo,
		jwtService: jwtService,
	}
}

// ResolveAppointment turns a QR token into the visit it grants access to.
//
// Flow:
// 1. Reject an empty token
// 2. Verify signature and expiry (expired is reported apart from invalid)
// 3. Require a patient id in the payload
// 4. Fetch the visit; a valid token for a deleted visit is NotFound
func (u *appointmentUsecase) ResolveAppointment(ctx context.Context, token string) (*dto.AppointmentResponse, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	claims, err := u.jwtService.ValidateAppointmentToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		u.log.Warnf("Rejected QR token: %+v", err)
		return nil, ErrInvalidToken
	}

	if claims.PatientID <= 0 {
		return nil, ErrMalformedPayload
	}

	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), claims.PatientID)
	if err != nil {
		u.log.Errorf("Failed to fetch appointment for patient %d: %+v", claims.PatientID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.PatientVisitToAppointment(visit), nil
}
