package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	bookingDomain "github.com/medidesk/service-booking/internal/domain/booking"
)

// CancelBookingRequestValidator checks that a booking-to-cancel exists.
type CancelBookingRequestValidator struct {
	bookings bookingDomain.Repository
}

// NewCancelBookingRequestValidator creates a validator backed by the given
// booking store.
func NewCancelBookingRequestValidator(bookings bookingDomain.Repository) *CancelBookingRequestValidator {
	return &CancelBookingRequestValidator{bookings: bookings}
}

// Validate fails when no booking with the given identifier exists.
func (v *CancelBookingRequestValidator) Validate(ctx context.Context, id uuid.UUID) (ValidationResult, error) {
	result := NewValidationResult(true)

	exists, err := v.bookings.ExistsByID(ctx, id)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("failed to check booking existence: %w", err)
	}
	if !exists {
		result.AddError(msgBookingNotFound)
		return result, nil
	}

	return result, nil
}
