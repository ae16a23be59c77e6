package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/medidesk/service-booking/internal/domain"
	bookingDomain "github.com/medidesk/service-booking/internal/domain/booking"
	clinicDomain "github.com/medidesk/service-booking/internal/domain/clinic"
)

// ClinicModel is the GORM model for the clinics table.
type ClinicModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"uniqueIndex;not null;size:200"`
	SurgeryType int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ClinicModel) TableName() string {
	return "clinics"
}

// GormClinicRepository is the GORM-based implementation of the clinic
// repository contract.
type GormClinicRepository struct {
	db *gorm.DB
}

// NewGormClinicRepository creates a new GormClinicRepository.
func NewGormClinicRepository(db *gorm.DB) *GormClinicRepository {
	return &GormClinicRepository{db: db}
}

// FindByID retrieves a clinic by identifier.
func (r *GormClinicRepository) FindByID(ctx context.Context, id int64) (*clinicDomain.Clinic, error) {
	var model ClinicModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Clinic", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find clinic by ID: %w", err)
	}
	return toDomainClinic(&model), nil
}

// FindAll retrieves all clinics.
func (r *GormClinicRepository) FindAll(ctx context.Context) ([]*clinicDomain.Clinic, error) {
	var models []ClinicModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}

	clinics := make([]*clinicDomain.Clinic, len(models))
	for i := range models {
		clinics[i] = toDomainClinic(&models[i])
	}
	return clinics, nil
}

// ExistsByName reports whether a clinic with the given name exists.
func (r *GormClinicRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ClinicModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check clinic name: %w", err)
	}
	return count > 0, nil
}

// Save persists a new clinic and assigns the generated identifier.
func (r *GormClinicRepository) Save(ctx context.Context, cl *clinicDomain.Clinic) error {
	model := &ClinicModel{
		Name:        cl.Name(),
		SurgeryType: int(cl.SurgeryType()),
		CreatedAt:   cl.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save clinic: %w", err)
	}
	cl.AssignID(model.ID)
	return nil
}

func toDomainClinic(m *ClinicModel) *clinicDomain.Clinic {
	return clinicDomain.Reconstruct(
		m.ID,
		m.Name,
		bookingDomain.SurgeryType(m.SurgeryType),
		m.CreatedAt,
	)
}
