package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/medidesk/service-booking/internal/domain"
	doctorDomain "github.com/medidesk/service-booking/internal/domain/doctor"
)

// DoctorModel is the GORM model for the doctors table.
type DoctorModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	FirstName   string    `gorm:"not null;size:100"`
	LastName    string    `gorm:"not null;size:100"`
	Gender      int       `gorm:"not null"`
	Email       string    `gorm:"uniqueIndex;not null;size:320"`
	DateOfBirth time.Time `gorm:""`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (DoctorModel) TableName() string {
	return "doctors"
}

// GormDoctorRepository is the GORM-based implementation of the doctor
// repository contract.
type GormDoctorRepository struct {
	db *gorm.DB
}

// NewGormDoctorRepository creates a new GormDoctorRepository.
func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

// FindByID retrieves a doctor by identifier.
func (r *GormDoctorRepository) FindByID(ctx context.Context, id int64) (*doctorDomain.Doctor, error) {
	var model DoctorModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Doctor", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find doctor by ID: %w", err)
	}
	return toDomainDoctor(&model), nil
}

// FindAll retrieves all doctors.
func (r *GormDoctorRepository) FindAll(ctx context.Context) ([]*doctorDomain.Doctor, error) {
	var models []DoctorModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	doctors := make([]*doctorDomain.Doctor, len(models))
	for i := range models {
		doctors[i] = toDomainDoctor(&models[i])
	}
	return doctors, nil
}

// ExistsByEmail reports whether a doctor with the given email exists.
func (r *GormDoctorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DoctorModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check doctor email: %w", err)
	}
	return count > 0, nil
}

// Save persists a new doctor and assigns the generated identifier.
func (r *GormDoctorRepository) Save(ctx context.Context, doc *doctorDomain.Doctor) error {
	model := &DoctorModel{
		FirstName:   doc.FirstName(),
		LastName:    doc.LastName(),
		Gender:      doc.Gender(),
		Email:       doc.Email(),
		DateOfBirth: doc.DateOfBirth(),
		CreatedAt:   doc.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save doctor: %w", err)
	}
	doc.AssignID(model.ID)
	return nil
}

func toDomainDoctor(m *DoctorModel) *doctorDomain.Doctor {
	return doctorDomain.Reconstruct(
		m.ID,
		m.FirstName,
		m.LastName,
		m.Gender,
		m.Email,
		m.DateOfBirth,
		m.CreatedAt,
	)
}
