package catalogrepo

import (
	"context"
	"errors"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormWeeklyMenuRepository stores the weekly patient menu.
type GormWeeklyMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormWeeklyMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormWeeklyMenuRepository {
	return &GormWeeklyMenuRepository{db: db, tracker: tracker}
}

func (r *GormWeeklyMenuRepository) Add(ctx context.Context, aggregate *catalog.WeeklyMenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := weeklyFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("weekly menu item insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update only writes availability; the slot and dish are immutable.
func (r *GormWeeklyMenuRepository) Update(ctx context.Context, aggregate *catalog.WeeklyMenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&WeeklyMenuItemDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("available", aggregate.IsAvailable())
	if result.Error != nil {
		return errs.NewPersistenceError("weekly menu item update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("weekly menu item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWeeklyMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.WeeklyMenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WeeklyMenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("weekly menu item", id.String())
		}
		return nil, errs.NewPersistenceError("weekly menu item select", err)
	}

	return weeklyToDomain(dto)
}

func (r *GormWeeklyMenuRepository) ListAll(ctx context.Context) ([]*catalog.WeeklyMenuItem, error) {
	var dtos []WeeklyMenuItemDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("weekly menu item select", err)
	}

	items := make([]*catalog.WeeklyMenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := weeklyToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GormEmployeeMenuRepository stores employee menus with their photo.
type GormEmployeeMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormEmployeeMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeMenuRepository {
	return &GormEmployeeMenuRepository{db: db, tracker: tracker}
}

func (r *GormEmployeeMenuRepository) Add(ctx context.Context, aggregate *catalog.EmployeeMenu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("employee menu insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEmployeeMenuRepository) Update(ctx context.Context, aggregate *catalog.EmployeeMenu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(aggregate)
	columns := map[string]any{
		"description": dto.Description,
		"base_price":  dto.BasePrice,
		"available":   dto.Available,
	}
	// A photo is never detached, so an empty one means it was not loaded.
	if len(dto.Photo) > 0 {
		columns["photo"] = dto.Photo
		columns["photo_content_type"] = dto.PhotoContentType
	}
	result := r.db.WithContext(ctx).Model(&EmployeeMenuDTO{}).
		Where("id = ?", dto.ID).
		Updates(columns)
	if result.Error != nil {
		return errs.NewPersistenceError("employee menu update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee menu", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEmployeeMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.EmployeeMenu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeMenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee menu", id.String())
		}
		return nil, errs.NewPersistenceError("employee menu select", err)
	}

	return employeeToDomain(dto)
}

// ListAll loads every menu without its photo bytes; callers that need the
// photo go through Get.
func (r *GormEmployeeMenuRepository) ListAll(ctx context.Context) ([]*catalog.EmployeeMenu, error) {
	var dtos []EmployeeMenuDTO
	if err := r.db.WithContext(ctx).
		Omit("photo").
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("employee menu select", err)
	}

	menus := make([]*catalog.EmployeeMenu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := employeeToDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, nil
}
