package orderrepo

import (
	"context"
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPatientOrderRepository stores patient orders. Update and Delete are
// guarded by the version column.
type GormPatientOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPatientOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPatientOrderRepository {
	return &GormPatientOrderRepository{db: db, tracker: tracker}
}

func (r *GormPatientOrderRepository) Add(ctx context.Context, aggregate *order.PatientOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := patientOrderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("patient order insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPatientOrderRepository) Update(ctx context.Context, aggregate *order.PatientOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := patientOrderFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PatientOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(lifecycleColumns(dto.LifecycleDTO))
	if err := checkSwap(ctx, r.db, &PatientOrderDTO{}, "patient order", aggregate.ID(), result); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPatientOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.PatientOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PatientOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("patient order", id.String())
		}
		return nil, errs.NewPersistenceError("patient order select", err)
	}

	return patientOrderToDomain(dto)
}

func (r *GormPatientOrderRepository) Delete(ctx context.Context, aggregate *order.PatientOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Lifecycle().Version()).
		Delete(&PatientOrderDTO{})
	return checkSwap(ctx, r.db, &PatientOrderDTO{}, "patient order", aggregate.ID(), result)
}

// GormEmployeeOrderRepository stores employee orders. Restored orders have
// their total re-checked by calc.
type GormEmployeeOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	calc    order.PriceCalculator
}

func NewGormEmployeeOrderRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	calc order.PriceCalculator,
) *GormEmployeeOrderRepository {
	return &GormEmployeeOrderRepository{db: db, tracker: tracker, calc: calc}
}

func (r *GormEmployeeOrderRepository) Add(ctx context.Context, aggregate *order.EmployeeOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeOrderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("employee order insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEmployeeOrderRepository) Update(ctx context.Context, aggregate *order.EmployeeOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeOrderFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EmployeeOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(lifecycleColumns(dto.LifecycleDTO))
	if err := checkSwap(ctx, r.db, &EmployeeOrderDTO{}, "employee order", aggregate.ID(), result); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEmployeeOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.EmployeeOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee order", id.String())
		}
		return nil, errs.NewPersistenceError("employee order select", err)
	}

	return employeeOrderToDomain(dto, r.calc)
}

func (r *GormEmployeeOrderRepository) Delete(ctx context.Context, aggregate *order.EmployeeOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Lifecycle().Version()).
		Delete(&EmployeeOrderDTO{})
	return checkSwap(ctx, r.db, &EmployeeOrderDTO{}, "employee order", aggregate.ID(), result)
}

// lifecycleColumns lists the only columns a status change may touch. A map
// is used so that nil timestamps are written too.
func lifecycleColumns(lc LifecycleDTO) map[string]any {
	return map[string]any{
		"status":       lc.Status,
		"prepared_at":  lc.PreparedAt,
		"delivered_at": lc.DeliveredAt,
		"version":      gorm.Expr("version + 1"),
	}
}

// checkSwap turns a guarded write that matched no row into the reason: the
// row is gone, or its version moved on.
func checkSwap(ctx context.Context, db *gorm.DB, model any, entity string, id kernel.UUID, result *gorm.DB) error {
	if result.Error != nil {
		return errs.NewPersistenceError(entity+" write", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return errs.NewPersistenceError(entity+" write", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return errs.NewConcurrentModificationError(entity, id.String())
}
