package patientrepo

import (
	"context"
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"
	"clinicmeals/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormPatientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPatientRepository(db *gorm.DB, tracker aggregateTracker) *GormPatientRepository {
	return &GormPatientRepository{db: db, tracker: tracker}
}

func (r *GormPatientRepository) Add(ctx context.Context, aggregate *patient.Patient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("patient insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the editable columns and the discharge date. The name and
// admission date are fixed at creation.
func (r *GormPatientRepository) Update(ctx context.Context, aggregate *patient.Patient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PatientDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"room":          dto.Room,
			"service":       dto.Service,
			"diet":          dto.Diet,
			"allergies":     dto.Allergies,
			"discharged_at": dto.DischargedAt,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("patient update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("patient", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("patient", id.String())
		}
		return nil, errs.NewPersistenceError("patient select", err)
	}

	return toDomain(dto)
}
