package application

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medidesk/service-booking/internal/domain"
	bookingDomain "github.com/medidesk/service-booking/internal/domain/booking"
	clinicDomain "github.com/medidesk/service-booking/internal/domain/clinic"
	doctorDomain "github.com/medidesk/service-booking/internal/domain/doctor"
	patientDomain "github.com/medidesk/service-booking/internal/domain/patient"
)

// fixedNow is the reference instant used as "now" in tests.
var fixedNow = time.Date(2021, 1, 10, 12, 0, 0, 0, time.UTC)

// --- Fake repositories ---

type fakeBookingRepo struct {
	bookings  map[uuid.UUID]*bookingDomain.Booking
	saveErr   error
	updateErr error
	findErr   error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*bookingDomain.Booking)}
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	bk, ok := f.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id.String())
	}
	return bk, nil
}

func (f *fakeBookingRepo) FindByPatientID(_ context.Context, patientID int64) ([]*bookingDomain.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*bookingDomain.Booking
	for _, bk := range f.bookings {
		if bk.PatientID() == patientID {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindNextByPatientID(_ context.Context, patientID int64, after time.Time) (*bookingDomain.Booking, error) {
	var next *bookingDomain.Booking
	for _, bk := range f.bookings {
		if bk.PatientID() != patientID || bk.IsCancelled() || !bk.StartTime().After(after) {
			continue
		}
		if next == nil || bk.StartTime().Before(next.StartTime()) {
			next = bk
		}
	}
	if next == nil {
		return nil, domain.NewNotFoundError("Upcoming booking for patient", strconv.FormatInt(patientID, 10))
	}
	return next, nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, doctorID, patientID int64, start, end time.Time) (int64, error) {
	if f.findErr != nil {
		return 0, f.findErr
	}
	var count int64
	for _, bk := range f.bookings {
		if bk.DoctorID() != doctorID || bk.PatientID() != patientID {
			continue
		}
		if !bk.StartTime().Before(start) && !bk.StartTime().After(end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if f.findErr != nil {
		return false, f.findErr
	}
	_, ok := f.bookings[id]
	return ok, nil
}

func (f *fakeBookingRepo) Save(_ context.Context, bk *bookingDomain.Booking) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.bookings[bk.ID()] = bk
	return nil
}

func (f *fakeBookingRepo) Update(_ context.Context, bk *bookingDomain.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.bookings[bk.ID()]; !ok {
		return domain.NewNotFoundError("Booking", bk.ID().String())
	}
	f.bookings[bk.ID()] = bk
	return nil
}

type fakePatientRepo struct {
	patients map[int64]*patientDomain.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[int64]*patientDomain.Patient)}
}

func (f *fakePatientRepo) FindByID(_ context.Context, id int64) (*patientDomain.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, domain.NewNotFoundError("Patient", strconv.FormatInt(id, 10))
	}
	return p, nil
}

func (f *fakePatientRepo) FindAll(_ context.Context) ([]*patientDomain.Patient, error) {
	var out []*patientDomain.Patient
	for _, p := range f.patients {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePatientRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, p := range f.patients {
		if p.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePatientRepo) Save(_ context.Context, p *patientDomain.Patient) error {
	id := int64(len(f.patients) + 1)
	p.AssignID(id)
	f.patients[id] = p
	return nil
}

type fakeDoctorRepo struct {
	doctors map[int64]*doctorDomain.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[int64]*doctorDomain.Doctor)}
}

func (f *fakeDoctorRepo) FindByID(_ context.Context, id int64) (*doctorDomain.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, domain.NewNotFoundError("Doctor", strconv.FormatInt(id, 10))
	}
	return d, nil
}

func (f *fakeDoctorRepo) FindAll(_ context.Context) ([]*doctorDomain.Doctor, error) {
	var out []*doctorDomain.Doctor
	for _, d := range f.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, d := range f.doctors {
		if d.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDoctorRepo) Save(_ context.Context, d *doctorDomain.Doctor) error {
	id := int64(len(f.doctors) + 1)
	d.AssignID(id)
	f.doctors[id] = d
	return nil
}

type fakeClinicRepo struct {
	clinics map[int64]*clinicDomain.Clinic
}

func newFakeClinicRepo() *fakeClinicRepo {
	return &fakeClinicRepo{clinics: make(map[int64]*clinicDomain.Clinic)}
}

func (f *fakeClinicRepo) FindByID(_ context.Context, id int64) (*clinicDomain.Clinic, error) {
	c, ok := f.clinics[id]
	if !ok {
		return nil, domain.NewNotFoundError("Clinic", strconv.FormatInt(id, 10))
	}
	return c, nil
}

func (f *fakeClinicRepo) FindAll(_ context.Context) ([]*clinicDomain.Clinic, error) {
	var out []*clinicDomain.Clinic
	for _, c := range f.clinics {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClinicRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range f.clinics {
		if c.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClinicRepo) Save(_ context.Context, c *clinicDomain.Clinic) error {
	id := int64(len(f.clinics) + 1)
	c.AssignID(id)
	f.clinics[id] = c
	return nil
}

// --- Fake event publisher ---

type publishedEvent struct {
	eventType string
	key       string
	data      interface{}
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, eventType, key string, data interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, publishedEvent{eventType: eventType, key: key, data: data})
	return nil
}

// --- Fixture ---

type serviceFixture struct {
	bookings  *fakeBookingRepo
	patients  *fakePatientRepo
	doctors   *fakeDoctorRepo
	clinics   *fakeClinicRepo
	publisher *fakePublisher
	svc       *BookingService
}

// newServiceFixture wires a BookingService over fakes, seeded with clinic 12
// (SystemOne), patient 100 attached to it, and doctor 1, with the clock
// pinned to fixedNow.
func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	bookings := newFakeBookingRepo()
	patients := newFakePatientRepo()
	doctors := newFakeDoctorRepo()
	clinics := newFakeClinicRepo()
	publisher := &fakePublisher{}

	clinics.clinics[12] = clinicDomain.Reconstruct(12, "Mr Docs Healthcare Bonanza", bookingDomain.SurgeryTypeSystemOne, fixedNow)
	patients.patients[100] = patientDomain.Reconstruct(
		100, "Bill", "Bagly", 1, "btotheb@gmail.com",
		time.Date(1912, 1, 17, 0, 0, 0, 0, time.UTC), 12, fixedNow,
	)
	doctors.doctors[1] = doctorDomain.Reconstruct(
		1, "Mac", "Guffin", 1, "drmg@docworld.com",
		time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), fixedNow,
	)

	addValidator := NewAddBookingRequestValidator(bookings)
	addValidator.now = func() time.Time { return fixedNow }
	cancelValidator := NewCancelBookingRequestValidator(bookings)

	svc := NewBookingService(
		bookings, patients, doctors, clinics,
		addValidator, cancelValidator,
		publisher, zap.NewNop(),
	)
	svc.now = func() time.Time { return fixedNow }

	return &serviceFixture{
		bookings:  bookings,
		patients:  patients,
		doctors:   doctors,
		clinics:   clinics,
		publisher: publisher,
		svc:       svc,
	}
}

// seedBooking inserts a booking directly into the fake store.
func (f *serviceFixture) seedBooking(t *testing.T, start, end time.Time, patientID, doctorID int64, cancelled bool) *bookingDomain.Booking {
	t.Helper()
	bk := bookingDomain.Reconstruct(
		uuid.New(), start, end, patientID, doctorID,
		bookingDomain.SurgeryTypeSystemOne, cancelled, fixedNow, fixedNow,
	)
	f.bookings.bookings[bk.ID()] = bk
	return bk
}
