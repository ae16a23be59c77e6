package patient

import (
	"time"

	"github.com/medidesk/service-booking/internal/domain"
)

// Patient is a registered patient. Each patient belongs to exactly one
// clinic, which determines the surgery type of their bookings.
type Patient struct {
	id          int64
	firstName   string
	lastName    string
	gender      int
	email       string
	dateOfBirth time.Time
	clinicID    int64
	createdAt   time.Time
}

// NewPatient creates a new Patient with validated required fields. The
// identifier is assigned by the store on first save.
func NewPatient(
	firstName, lastName string,
	gender int,
	email string,
	dateOfBirth time.Time,
	clinicID int64,
) (*Patient, error) {
	if firstName == "" {
		return nil, domain.NewValidationError("first name is required")
	}
	if lastName == "" {
		return nil, domain.NewValidationError("last name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if clinicID <= 0 {
		return nil, domain.NewValidationError("clinic ID is required")
	}

	return &Patient{
		firstName:   firstName,
		lastName:    lastName,
		gender:      gender,
		email:       email,
		dateOfBirth: dateOfBirth,
		clinicID:    clinicID,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Patient from persistence data (no validation).
func Reconstruct(
	id int64,
	firstName, lastName string,
	gender int,
	email string,
	dateOfBirth time.Time,
	clinicID int64,
	createdAt time.Time,
) *Patient {
	return &Patient{
		id:          id,
		firstName:   firstName,
		lastName:    lastName,
		gender:      gender,
		email:       email,
		dateOfBirth: dateOfBirth,
		clinicID:    clinicID,
		createdAt:   createdAt,
	}
}

func (p *Patient) ID() int64              { return p.id }
func (p *Patient) FirstName() string      { return p.firstName }
func (p *Patient) LastName() string       { return p.lastName }
func (p *Patient) Gender() int            { return p.gender }
func (p *Patient) Email() string          { return p.email }
func (p *Patient) DateOfBirth() time.Time { return p.dateOfBirth }
func (p *Patient) ClinicID() int64        { return p.clinicID }
func (p *Patient) CreatedAt() time.Time   { return p.createdAt }

// AssignID sets the store-generated identifier after the first save.
func (p *Patient) AssignID(id int64) { p.id = id }
