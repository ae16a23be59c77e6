package patient

import "context"

// Repository defines the persistence contract for patients.
type Repository interface {
	// FindByID retrieves a patient by identifier.
	FindByID(ctx context.Context, id int64) (*Patient, error)

	// FindAll retrieves all patients.
	FindAll(ctx context.Context) ([]*Patient, error)

	// ExistsByEmail reports whether a patient with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists a new patient and assigns its identifier.
	Save(ctx context.Context, patient *Patient) error
}
