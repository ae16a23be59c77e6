package doctor

import (
	"time"

	"github.com/medidesk/service-booking/internal/domain"
)

// Doctor is a registered doctor available for bookings.
type Doctor struct {
	id          int64
	firstName   string
	lastName    string
	gender      int
	email       string
	dateOfBirth time.Time
	createdAt   time.Time
}

// NewDoctor creates a new Doctor with validated required fields. The
// identifier is assigned by the store on first save.
func NewDoctor(
	firstName, lastName string,
	gender int,
	email string,
	dateOfBirth time.Time,
) (*Doctor, error) {
	if firstName == "" {
		return nil, domain.NewValidationError("first name is required")
	}
	if lastName == "" {
		return nil, domain.NewValidationError("last name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}

	return &Doctor{
		firstName:   firstName,
		lastName:    lastName,
		gender:      gender,
		email:       email,
		dateOfBirth: dateOfBirth,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Doctor from persistence data (no validation).
func Reconstruct(
	id int64,
	firstName, lastName string,
	gender int,
	email string,
	dateOfBirth time.Time,
	createdAt time.Time,
) *Doctor {
	return &Doctor{
		id:          id,
		firstName:   firstName,
		lastName:    lastName,
		gender:      gender,
		email:       email,
		dateOfBirth: dateOfBirth,
		createdAt:   createdAt,
	}
}

func (d *Doctor) ID() int64              { return d.id }
func (d *Doctor) FirstName() string      { return d.firstName }
func (d *Doctor) LastName() string       { return d.lastName }
func (d *Doctor) Gender() int            { return d.gender }
func (d *Doctor) Email() string          { return d.email }
func (d *Doctor) DateOfBirth() time.Time { return d.dateOfBirth }
func (d *Doctor) CreatedAt() time.Time   { return d.createdAt }

// AssignID sets the store-generated identifier after the first save.
func (d *Doctor) AssignID(id int64) { d.id = id }
