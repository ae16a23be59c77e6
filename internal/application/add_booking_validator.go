package application

import (
	"context"
	"fmt"
	"time"

	bookingDomain "github.com/medidesk/service-booking/internal/domain/booking"
)

const (
	msgAppointmentInPast = "An appointment date cannot be in past"
	msgDoctorBusy        = "Doctor is already busy for selected date & time"
	msgBookingNotFound   = "A booking with that ID does not exist"
)

// AddBookingRequestValidator checks a proposed booking against business
// rules before creation. Checks run in order and short-circuit on the first
// failure; infrastructure errors are returned separately and are never
// encoded into the result.
type AddBookingRequestValidator struct {
	bookings bookingDomain.Repository
	now      func() time.Time
}

// NewAddBookingRequestValidator creates a validator backed by the given
// booking store and the wall clock.
func NewAddBookingRequestValidator(bookings bookingDomain.Repository) *AddBookingRequestValidator {
	return &AddBookingRequestValidator{bookings: bookings, now: time.Now}
}

// Validate applies the past-date check and the doctor-conflict check.
func (v *AddBookingRequestValidator) Validate(ctx context.Context, req AddBookingRequest) (ValidationResult, error) {
	result := NewValidationResult(true)

	// Appointment must start strictly after now.
	if !req.StartTime.After(v.now()) {
		result.AddError(msgAppointmentInPast)
		return result, nil
	}

	// The conflict check is scoped to the same doctor AND the same patient,
	// with the existing booking's start time inside [start, end] inclusive,
	// cancelled or not.
	count, err := v.bookings.CountOverlapping(ctx, req.DoctorID, req.PatientID, req.StartTime, req.EndTime)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("failed to check doctor availability: %w", err)
	}
	if count > 0 {
		result.AddError(msgDoctorBusy)
		return result, nil
	}

	return result, nil
}
