package application

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"go.uber.org/zap"

	"github.com/medidesk/service-booking/internal/domain"
	clinicDomain "github.com/medidesk/service-booking/internal/domain/clinic"
	patientDomain "github.com/medidesk/service-booking/internal/domain/patient"
)

// AddPatientRequest is the request DTO for registering a patient.
type AddPatientRequest struct {
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	Gender      int       `json:"gender"`
	Email       string    `json:"email" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth"`
	ClinicID    int64     `json:"clinic_id" binding:"required"`
}

// PatientDTO is the response representation of a patient.
type PatientDTO struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      int       `json:"gender"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"date_of_birth"`
	ClinicID    int64     `json:"clinic_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// PatientService implements registration and lookup of patients.
type PatientService struct {
	patients patientDomain.Repository
	clinics  clinicDomain.Repository
	logger   *zap.Logger
}

// NewPatientService creates a new PatientService.
func NewPatientService(patients patientDomain.Repository, clinics clinicDomain.Repository, logger *zap.Logger) *PatientService {
	return &PatientService{patients: patients, clinics: clinics, logger: logger}
}

// AddPatient registers a new patient after checking email syntax and
// uniqueness and that the referenced clinic exists.
func (s *PatientService) AddPatient(ctx context.Context, req AddPatientRequest) (*PatientDTO, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, domain.NewValidationError("email must be a valid email address")
	}

	taken, err := s.patients.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient email: %w", err)
	}
	if taken {
		return nil, domain.NewConflictError("a patient with that email address already exists")
	}

	if _, err := s.clinics.FindByID(ctx, req.ClinicID); err != nil {
		return nil, err
	}

	pat, err := patientDomain.NewPatient(req.FirstName, req.LastName, req.Gender, req.Email, req.DateOfBirth, req.ClinicID)
	if err != nil {
		return nil, err
	}

	if err := s.patients.Save(ctx, pat); err != nil {
		s.logger.Error("failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.logger.Info("patient registered",
		zap.Int64("patient_id", pat.ID()),
		zap.Int64("clinic_id", pat.ClinicID()),
	)
	result := toPatientDTO(pat)
	return &result, nil
}

// GetPatient returns a single patient by identifier.
func (s *PatientService) GetPatient(ctx context.Context, id int64) (*PatientDTO, error) {
	pat, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toPatientDTO(pat)
	return &result, nil
}

// GetAllPatients returns all registered patients.
func (s *PatientService) GetAllPatients(ctx context.Context) ([]PatientDTO, error) {
	patients, err := s.patients.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	dtos := make([]PatientDTO, len(patients))
	for i, p := range patients {
		dtos[i] = toPatientDTO(p)
	}
	return dtos, nil
}

func toPatientDTO(p *patientDomain.Patient) PatientDTO {
	return PatientDTO{
		ID:          p.ID(),
		FirstName:   p.FirstName(),
		LastName:    p.LastName(),
		Gender:      p.Gender(),
		Email:       p.Email(),
		DateOfBirth: p.DateOfBirth(),
		ClinicID:    p.ClinicID(),
		CreatedAt:   p.CreatedAt(),
	}
}
