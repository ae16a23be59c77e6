package clinic

import (
	"time"

	"github.com/medidesk/service-booking/internal/domain"
	"github.com/medidesk/service-booking/internal/domain/booking"
)

// Clinic is an organizational entity. Its surgery type is copied onto every
// booking created for one of its patients.
type Clinic struct {
	id          int64
	name        string
	surgeryType booking.SurgeryType
	createdAt   time.Time
}

// NewClinic creates a new Clinic with validated required fields. The
// identifier is assigned by the store on first save.
func NewClinic(name string, surgeryType booking.SurgeryType) (*Clinic, error) {
	if name == "" {
		return nil, domain.NewValidationError("clinic name is required")
	}
	if !surgeryType.IsValid() {
		return nil, domain.NewValidationError("invalid surgery type")
	}

	return &Clinic{
		name:        name,
		surgeryType: surgeryType,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Clinic from persistence data (no validation).
func Reconstruct(id int64, name string, surgeryType booking.SurgeryType, createdAt time.Time) *Clinic {
	return &Clinic{
		id:          id,
		name:        name,
		surgeryType: surgeryType,
		createdAt:   createdAt,
	}
}

func (c *Clinic) ID() int64                        { return c.id }
func (c *Clinic) Name() string                     { return c.name }
func (c *Clinic) SurgeryType() booking.SurgeryType { return c.surgeryType }
func (c *Clinic) CreatedAt() time.Time             { return c.createdAt }

// AssignID sets the store-generated identifier after the first save.
func (c *Clinic) AssignID(id int64) { c.id = id }
