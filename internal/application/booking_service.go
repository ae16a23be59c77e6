package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medidesk/service-booking/internal/domain"
	bookingDomain "github.com/medidesk/service-booking/internal/domain/booking"
	clinicDomain "github.com/medidesk/service-booking/internal/domain/clinic"
	doctorDomain "github.com/medidesk/service-booking/internal/domain/doctor"
	patientDomain "github.com/medidesk/service-booking/internal/domain/patient"
	"github.com/medidesk/service-booking/internal/events"
)

// AddBookingRequest is the request DTO for creating a booking. Any ID
// supplied by the caller is ignored; bookings always get a freshly generated
// identifier. The surgery type is derived from the patient's clinic, never
// taken from the request.
type AddBookingRequest struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	PatientID int64     `json:"patient_id" binding:"required"`
	DoctorID  int64     `json:"doctor_id" binding:"required"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID          uuid.UUID `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	PatientID   int64     `json:"patient_id"`
	DoctorID    int64     `json:"doctor_id"`
	SurgeryType int       `json:"surgery_type"`
	IsCancelled bool      `json:"is_cancelled"`
}

// GetAllBookingsResponse wraps a patient's bookings.
type GetAllBookingsResponse struct {
	Bookings []BookingDTO `json:"bookings"`
}

// NextAppointmentDTO is the projection returned by the next-appointment query.
type NextAppointmentDTO struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  int64     `json:"doctor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// EventPublisher publishes booking lifecycle events. Publishing is best
// effort: failures are logged and never fail the request.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data interface{}) error
}

// BookingService orchestrates validation, construction, persistence and
// retrieval of bookings.
type BookingService struct {
	bookings        bookingDomain.Repository
	patients        patientDomain.Repository
	doctors         doctorDomain.Repository
	clinics         clinicDomain.Repository
	addValidator    *AddBookingRequestValidator
	cancelValidator *CancelBookingRequestValidator
	publisher       EventPublisher
	logger          *zap.Logger
	now             func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	patients patientDomain.Repository,
	doctors doctorDomain.Repository,
	clinics clinicDomain.Repository,
	addValidator *AddBookingRequestValidator,
	cancelValidator *CancelBookingRequestValidator,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:        bookings,
		patients:        patients,
		doctors:         doctors,
		clinics:         clinics,
		addValidator:    addValidator,
		cancelValidator: cancelValidator,
		publisher:       publisher,
		logger:          logger,
		now:             time.Now,
	}
}

// AddBooking validates and persists a new booking for the given patient and
// doctor. Only the first validation error is surfaced to the caller.
func (s *BookingService) AddBooking(ctx context.Context, req AddBookingRequest) error {
	result, err := s.addValidator.Validate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to validate booking request: %w", err)
	}
	if !result.Passed {
		return domain.NewValidationError(result.FirstError())
	}

	pat, err := s.patients.FindByID(ctx, req.PatientID)
	if err != nil {
		return err
	}
	doc, err := s.doctors.FindByID(ctx, req.DoctorID)
	if err != nil {
		return err
	}
	cl, err := s.clinics.FindByID(ctx, pat.ClinicID())
	if err != nil {
		return err
	}

	bk, err := bookingDomain.NewBooking(req.StartTime, req.EndTime, pat.ID(), doc.ID(), cl.SurgeryType())
	if err != nil {
		return err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.Int64("patient_id", bk.PatientID()),
		zap.Int64("doctor_id", bk.DoctorID()),
	)

	s.publishEvent(ctx, events.TypeBookingCreated, bk.ID().String(), events.BookingCreatedEvent{
		BookingID:   bk.ID(),
		PatientID:   bk.PatientID(),
		DoctorID:    bk.DoctorID(),
		StartTime:   bk.StartTime(),
		EndTime:     bk.EndTime(),
		SurgeryType: int(bk.SurgeryType()),
		OccurredAt:  time.Now().UTC(),
	})

	return nil
}

// CancelBooking marks an existing booking as cancelled. All other fields are
// left unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) error {
	result, err := s.cancelValidator.Validate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to validate cancel request: %w", err)
	}
	if !result.Passed {
		return domain.NewValidationError(result.FirstError())
	}

	// The validator guarantees existence, but the lookup keeps its own
	// not-found path as a safety net.
	bk, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}

	bk.Cancel()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.logger.Info("booking cancelled", zap.String("booking_id", id.String()))

	s.publishEvent(ctx, events.TypeBookingCancelled, id.String(), events.BookingCancelledEvent{
		BookingID:  bk.ID(),
		PatientID:  bk.PatientID(),
		DoctorID:   bk.DoctorID(),
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// GetAllBookings returns all bookings for the given patient, sorted by start
// time. An empty list is returned when nothing matches; this operation never
// fails for an unknown or zero patient ID.
func (s *BookingService) GetAllBookings(ctx context.Context, patientID int64) (GetAllBookingsResponse, error) {
	bookings, err := s.bookings.FindByPatientID(ctx, patientID)
	if err != nil {
		return GetAllBookingsResponse{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	dtos := make([]BookingDTO, 0, len(bookings))
	for _, bk := range bookings {
		dtos = append(dtos, toBookingDTO(bk))
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].StartTime.Before(dtos[j].StartTime) })

	return GetAllBookingsResponse{Bookings: dtos}, nil
}

// GetNextAppointment returns the patient's earliest non-cancelled booking
// with a start time in the future, or a not-found error when none exists.
func (s *BookingService) GetNextAppointment(ctx context.Context, patientID int64) (*NextAppointmentDTO, error) {
	bk, err := s.bookings.FindNextByPatientID(ctx, patientID, s.now())
	if err != nil {
		return nil, err
	}

	return &NextAppointmentDTO{
		ID:        bk.ID(),
		DoctorID:  bk.DoctorID(),
		StartTime: bk.StartTime(),
		EndTime:   bk.EndTime(),
	}, nil
}

func (s *BookingService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, key, data); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:          bk.ID(),
		StartTime:   bk.StartTime(),
		EndTime:     bk.EndTime(),
		PatientID:   bk.PatientID(),
		DoctorID:    bk.DoctorID(),
		SurgeryType: int(bk.SurgeryType()),
		IsCancelled: bk.IsCancelled(),
	}
}
