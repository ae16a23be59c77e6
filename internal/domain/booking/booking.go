package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/medidesk/service-booking/internal/domain"
)

// Booking is the aggregate root for a scheduled appointment between a
// patient and a doctor. Bookings are never physically deleted; cancellation
// only flips the cancelled flag.
type Booking struct {
	id          uuid.UUID
	startTime   time.Time
	endTime     time.Time
	patientID   int64
	doctorID    int64
	surgeryType SurgeryType
	cancelled   bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a new Booking with a freshly generated identifier and
// cancelled=false. The surgery type must already be derived from the
// patient's clinic by the caller.
func NewBooking(
	startTime, endTime time.Time,
	patientID, doctorID int64,
	surgeryType SurgeryType,
) (*Booking, error) {
	if patientID <= 0 {
		return nil, domain.NewValidationError("patient ID is required")
	}
	if doctorID <= 0 {
		return nil, domain.NewValidationError("doctor ID is required")
	}
	if !surgeryType.IsValid() {
		return nil, domain.NewValidationError("invalid surgery type")
	}

	now := time.Now().UTC()
	return &Booking{
		id:          uuid.New(),
		startTime:   startTime,
		endTime:     endTime,
		patientID:   patientID,
		doctorID:    doctorID,
		surgeryType: surgeryType,
		cancelled:   false,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	startTime, endTime time.Time,
	patientID, doctorID int64,
	surgeryType SurgeryType,
	cancelled bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		startTime:   startTime,
		endTime:     endTime,
		patientID:   patientID,
		doctorID:    doctorID,
		surgeryType: surgeryType,
		cancelled:   cancelled,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// StartTime returns the appointment start time.
func (b *Booking) StartTime() time.Time { return b.startTime }

// EndTime returns the appointment end time.
func (b *Booking) EndTime() time.Time { return b.endTime }

// PatientID returns the booked patient's identifier.
func (b *Booking) PatientID() int64 { return b.patientID }

// DoctorID returns the booked doctor's identifier.
func (b *Booking) DoctorID() int64 { return b.doctorID }

// SurgeryType returns the surgery type stamped from the patient's clinic.
func (b *Booking) SurgeryType() SurgeryType { return b.surgeryType }

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool { return b.cancelled }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Cancel marks the booking as cancelled. All other fields are untouched.
func (b *Booking) Cancel() {
	b.cancelled = true
	b.updatedAt = time.Now().UTC()
}
