package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/medidesk/service-booking/internal/domain"
	patientDomain "github.com/medidesk/service-booking/internal/domain/patient"
)

// PatientModel is the GORM model for the patients table.
type PatientModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	FirstName   string    `gorm:"not null;size:100"`
	LastName    string    `gorm:"not null;size:100"`
	Gender      int       `gorm:"not null"`
	Email       string    `gorm:"uniqueIndex;not null;size:320"`
	DateOfBirth time.Time `gorm:""`
	ClinicID    int64     `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PatientModel) TableName() string {
	return "patients"
}

// GormPatientRepository is the GORM-based implementation of the patient
// repository contract.
type GormPatientRepository struct {
	db *gorm.DB
}

// NewGormPatientRepository creates a new GormPatientRepository.
func NewGormPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

// FindByID retrieves a patient by identifier.
func (r *GormPatientRepository) FindByID(ctx context.Context, id int64) (*patientDomain.Patient, error) {
	var model PatientModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Patient", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find patient by ID: %w", err)
	}
	return toDomainPatient(&model), nil
}

// FindAll retrieves all patients.
func (r *GormPatientRepository) FindAll(ctx context.Context) ([]*patientDomain.Patient, error) {
	var models []PatientModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	patients := make([]*patientDomain.Patient, len(models))
	for i := range models {
		patients[i] = toDomainPatient(&models[i])
	}
	return patients, nil
}

// ExistsByEmail reports whether a patient with the given email exists.
func (r *GormPatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PatientModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check patient email: %w", err)
	}
	return count > 0, nil
}

// Save persists a new patient and assigns the generated identifier.
func (r *GormPatientRepository) Save(ctx context.Context, pat *patientDomain.Patient) error {
	model := &PatientModel{
		FirstName:   pat.FirstName(),
		LastName:    pat.LastName(),
		Gender:      pat.Gender(),
		Email:       pat.Email(),
		DateOfBirth: pat.DateOfBirth(),
		ClinicID:    pat.ClinicID(),
		CreatedAt:   pat.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}
	pat.AssignID(model.ID)
	return nil
}

func toDomainPatient(m *PatientModel) *patientDomain.Patient {
	return patientDomain.Reconstruct(
		m.ID,
		m.FirstName,
		m.LastName,
		m.Gender,
		m.Email,
		m.DateOfBirth,
		m.ClinicID,
		m.CreatedAt,
	)
}
