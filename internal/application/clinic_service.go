package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/medidesk/service-booking/internal/domain"
	bookingDomain "github.com/medidesk/service-booking/internal/domain/booking"
	clinicDomain "github.com/medidesk/service-booking/internal/domain/clinic"
)

// AddClinicRequest is the request DTO for registering a clinic.
type AddClinicRequest struct {
	Name        string `json:"name" binding:"required"`
	SurgeryType int    `json:"surgery_type" binding:"required"`
}

// ClinicDTO is the response representation of a clinic.
type ClinicDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	SurgeryType int       `json:"surgery_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClinicService implements registration and lookup of clinics.
type ClinicService struct {
	clinics clinicDomain.Repository
	logger  *zap.Logger
}

// NewClinicService creates a new ClinicService.
func NewClinicService(clinics clinicDomain.Repository, logger *zap.Logger) *ClinicService {
	return &ClinicService{clinics: clinics, logger: logger}
}

// AddClinic registers a new clinic after checking its name is unique and the
// surgery type is a known value.
func (s *ClinicService) AddClinic(ctx context.Context, req AddClinicRequest) (*ClinicDTO, error) {
	surgeryType, err := bookingDomain.ParseSurgeryType(req.SurgeryType)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	taken, err := s.clinics.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check clinic name: %w", err)
	}
	if taken {
		return nil, domain.NewConflictError("a clinic with that name already exists")
	}

	cl, err := clinicDomain.NewClinic(req.Name, surgeryType)
	if err != nil {
		return nil, err
	}

	if err := s.clinics.Save(ctx, cl); err != nil {
		s.logger.Error("failed to create clinic", zap.Error(err))
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}

	s.logger.Info("clinic registered", zap.Int64("clinic_id", cl.ID()))
	result := toClinicDTO(cl)
	return &result, nil
}

// GetAllClinics returns all registered clinics.
func (s *ClinicService) GetAllClinics(ctx context.Context) ([]ClinicDTO, error) {
	clinics, err := s.clinics.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	dtos := make([]ClinicDTO, len(clinics))
	for i, c := range clinics {
		dtos[i] = toClinicDTO(c)
	}
	return dtos, nil
}

func toClinicDTO(c *clinicDomain.Clinic) ClinicDTO {
	return ClinicDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		SurgeryType: int(c.SurgeryType()),
		CreatedAt:   c.CreatedAt(),
	}
}
