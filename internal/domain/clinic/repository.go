package clinic

import "context"

// Repository defines the persistence contract for clinics.
type Repository interface {
	// FindByID retrieves a clinic by identifier.
	FindByID(ctx context.Context, id int64) (*Clinic, error)

	// FindAll retrieves all clinics.
	FindAll(ctx context.Context) ([]*Clinic, error)

	// ExistsByName reports whether a clinic with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save persists a new clinic and assigns its identifier.
	Save(ctx context.Context, clinic *Clinic) error
}
