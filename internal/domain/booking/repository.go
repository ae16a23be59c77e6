package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for booking aggregates.
type Repository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByPatientID retrieves all bookings for a patient, ordered by start time.
	FindByPatientID(ctx context.Context, patientID int64) ([]*Booking, error)

	// FindNextByPatientID retrieves the earliest non-cancelled booking for a
	// patient whose start time is strictly after the given instant.
	FindNextByPatientID(ctx context.Context, patientID int64, after time.Time) (*Booking, error)

	// CountOverlapping counts bookings for the given doctor and patient whose
	// start time falls within [start, end] inclusive, cancelled or not.
	CountOverlapping(ctx context.Context, doctorID, patientID int64, start, end time.Time) (int64, error)

	// ExistsByID reports whether a booking with the given identifier exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save persists a new booking as a single atomic insert.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking.
	Update(ctx context.Context, booking *Booking) error
}
