package doctor

import "context"

// Repository defines the persistence contract for doctors.
type Repository interface {
	// FindByID retrieves a doctor by identifier.
	FindByID(ctx context.Context, id int64) (*Doctor, error)

	// FindAll retrieves all doctors.
	FindAll(ctx context.Context) ([]*Doctor, error)

	// ExistsByEmail reports whether a doctor with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists a new doctor and assigns its identifier.
	Save(ctx context.Context, doctor *Doctor) error
}
