package queries

import (
	"context"
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	weeklyMenuSQL = `
	SELECT id, day, diet, meal_type, dish_name, description, available, created_at
	FROM weekly_menu_items
	WHERE (NOT $1::boolean OR available)
	ORDER BY created_at`
	employeeMenusSQL = `
	SELECT id, name, description, base_price, available, photo IS NOT NULL, created_at
	FROM employee_menus
	WHERE (NOT $1::boolean OR available)
	ORDER BY name`
	employeeMenuPhotoSQL = `
	SELECT photo_content_type, photo
	FROM employee_menus
	WHERE id = $1 AND photo IS NOT NULL`
)

type GetWeeklyMenuQueryHandler struct {
	db Querier
}

func NewGetWeeklyMenuQueryHandler(db Querier) GetWeeklyMenuQueryHandler {
	return GetWeeklyMenuQueryHandler{db: db}
}

func (h GetWeeklyMenuQueryHandler) Handle(ctx context.Context, q GetWeeklyMenuQuery) ([]WeeklyMenuItemView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.Query(ctx, weeklyMenuSQL, q.AvailableOnly())
	if err != nil {
		return nil, errs.NewPersistenceError("weekly menu select", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (WeeklyMenuItemView, error) {
		var (
			id                  uuid.UUID
			v                   WeeklyMenuItemView
			day, diet, mealType string
			createdAt           time.Time
		)
		if err := row.Scan(&id, &day, &diet, &mealType, &v.DishName, &v.Description, &v.Available, &createdAt); err != nil {
			return WeeklyMenuItemView{}, err
		}
		v.CreatedAt = createdAt

		var err error
		if v.ID, err = toUUID(id); err != nil {
			return WeeklyMenuItemView{}, err
		}
		if v.Day, err = kernel.DayOfWeekFromString(day); err != nil {
			return WeeklyMenuItemView{}, err
		}
		if v.Diet, err = kernel.DietFromString(diet); err != nil {
			return WeeklyMenuItemView{}, err
		}
		if v.MealType, err = kernel.MealTypeFromString(mealType); err != nil {
			return WeeklyMenuItemView{}, err
		}
		return v, nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError("weekly menu scan", err)
	}
	return views, nil
}

type GetEmployeeMenusQueryHandler struct {
	db Querier
}

func NewGetEmployeeMenusQueryHandler(db Querier) GetEmployeeMenusQueryHandler {
	return GetEmployeeMenusQueryHandler{db: db}
}

func (h GetEmployeeMenusQueryHandler) Handle(ctx context.Context, q GetEmployeeMenusQuery) ([]EmployeeMenuView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.Query(ctx, employeeMenusSQL, q.AvailableOnly())
	if err != nil {
		return nil, errs.NewPersistenceError("employee menus select", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (EmployeeMenuView, error) {
		var (
			id        uuid.UUID
			v         EmployeeMenuView
			price     decimal.Decimal
			createdAt time.Time
		)
		if err := row.Scan(&id, &v.Name, &v.Description, &price, &v.Available, &v.HasPhoto, &createdAt); err != nil {
			return EmployeeMenuView{}, err
		}
		v.CreatedAt = createdAt

		var err error
		if v.ID, err = toUUID(id); err != nil {
			return EmployeeMenuView{}, err
		}
		if v.BasePrice, err = kernel.NewPrice(price); err != nil {
			return EmployeeMenuView{}, err
		}
		return v, nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError("employee menus scan", err)
	}
	return views, nil
}

type GetEmployeeMenuPhotoQueryHandler struct {
	db Querier
}

func NewGetEmployeeMenuPhotoQueryHandler(db Querier) GetEmployeeMenuPhotoQueryHandler {
	return GetEmployeeMenuPhotoQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown menu and for a
// menu without a photo.
func (h GetEmployeeMenuPhotoQueryHandler) Handle(ctx context.Context, q GetEmployeeMenuPhotoQuery) (PhotoView, error) {
	if err := q.Validate(); err != nil {
		return PhotoView{}, err
	}

	var v PhotoView
	err := h.db.QueryRow(ctx, employeeMenuPhotoSQL, q.MenuID().Bytes()).Scan(&v.ContentType, &v.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return PhotoView{}, errs.NewObjectNotFoundError("employee menu photo", q.MenuID().String())
	}
	if err != nil {
		return PhotoView{}, errs.NewPersistenceError("employee menu photo select", err)
	}
	return v, nil
}
