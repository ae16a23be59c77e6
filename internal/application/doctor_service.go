package application

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"go.uber.org/zap"

	"github.com/medidesk/service-booking/internal/domain"
	doctorDomain "github.com/medidesk/service-booking/internal/domain/doctor"
)

// AddDoctorRequest is the request DTO for registering a doctor.
type AddDoctorRequest struct {
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	Gender      int       `json:"gender"`
	Email       string    `json:"email" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// DoctorDTO is the response representation of a doctor.
type DoctorDTO struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      int       `json:"gender"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

// DoctorService implements registration and lookup of doctors.
type DoctorService struct {
	doctors doctorDomain.Repository
	logger  *zap.Logger
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(doctors doctorDomain.Repository, logger *zap.Logger) *DoctorService {
	return &DoctorService{doctors: doctors, logger: logger}
}

// AddDoctor registers a new doctor after checking email syntax and uniqueness.
func (s *DoctorService) AddDoctor(ctx context.Context, req AddDoctorRequest) (*DoctorDTO, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, domain.NewValidationError("email must be a valid email address")
	}

	taken, err := s.doctors.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check doctor email: %w", err)
	}
	if taken {
		return nil, domain.NewConflictError("a doctor with that email address already exists")
	}

	doc, err := doctorDomain.NewDoctor(req.FirstName, req.LastName, req.Gender, req.Email, req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	if err := s.doctors.Save(ctx, doc); err != nil {
		s.logger.Error("failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	s.logger.Info("doctor registered", zap.Int64("doctor_id", doc.ID()))
	result := toDoctorDTO(doc)
	return &result, nil
}

// GetAllDoctors returns all registered doctors.
func (s *DoctorService) GetAllDoctors(ctx context.Context) ([]DoctorDTO, error) {
	doctors, err := s.doctors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	dtos := make([]DoctorDTO, len(doctors))
	for i, d := range doctors {
		dtos[i] = toDoctorDTO(d)
	}
	return dtos, nil
}

func toDoctorDTO(d *doctorDomain.Doctor) DoctorDTO {
	return DoctorDTO{
		ID:          d.ID(),
		FirstName:   d.FirstName(),
		LastName:    d.LastName(),
		Gender:      d.Gender(),
		Email:       d.Email(),
		DateOfBirth: d.DateOfBirth(),
		CreatedAt:   d.CreatedAt(),
	}
}
