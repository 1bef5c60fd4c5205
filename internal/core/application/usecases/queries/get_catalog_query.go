package queries

import (
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var (
	ErrGetWeeklyMenuQueryIsNotConstructed = errors.New(
		"GetWeeklyMenuQuery must be created via NewGetWeeklyMenuQuery constructor",
	)
	ErrGetEmployeeMenusQueryIsNotConstructed = errors.New(
		"GetEmployeeMenusQuery must be created via NewGetEmployeeMenusQuery constructor",
	)
	ErrGetEmployeeMenuPhotoQueryIsNotConstructed = errors.New(
		"GetEmployeeMenuPhotoQuery must be created via NewGetEmployeeMenuPhotoQuery constructor",
	)
)

// GetWeeklyMenuQuery lists the weekly patient menu. Every signed-in role may
// read the catalog.
type GetWeeklyMenuQuery struct {
	actor         kernel.Actor
	availableOnly bool

	guard guard.ConstructorGuard
}

func NewGetWeeklyMenuQuery(actor kernel.Actor, availableOnly bool) (GetWeeklyMenuQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetWeeklyMenuQuery{}, err
	}
	return GetWeeklyMenuQuery{actor: actor, availableOnly: availableOnly, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWeeklyMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetWeeklyMenuQueryIsNotConstructed)
}

func (q GetWeeklyMenuQuery) AvailableOnly() bool { return q.availableOnly }

type WeeklyMenuItemView struct {
	ID          kernel.UUID
	Day         kernel.DayOfWeek
	Diet        kernel.Diet
	MealType    kernel.MealType
	DishName    string
	Description string
	Available   bool
	CreatedAt   time.Time
}

// GetEmployeeMenusQuery lists employee menus without their photo bytes.
type GetEmployeeMenusQuery struct {
	actor         kernel.Actor
	availableOnly bool

	guard guard.ConstructorGuard
}

func NewGetEmployeeMenusQuery(actor kernel.Actor, availableOnly bool) (GetEmployeeMenusQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetEmployeeMenusQuery{}, err
	}
	return GetEmployeeMenusQuery{actor: actor, availableOnly: availableOnly, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEmployeeMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeMenusQueryIsNotConstructed)
}

func (q GetEmployeeMenusQuery) AvailableOnly() bool { return q.availableOnly }

type EmployeeMenuView struct {
	ID          kernel.UUID
	Name        string
	Description string
	BasePrice   kernel.Price
	Available   bool
	HasPhoto    bool
	CreatedAt   time.Time
}

// GetEmployeeMenuPhotoQuery loads the photo of one menu. It needs no actor:
// photos are served to image tags that cannot carry a bearer token.
type GetEmployeeMenuPhotoQuery struct {
	menuID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetEmployeeMenuPhotoQuery(menuID kernel.UUID) (GetEmployeeMenuPhotoQuery, error) {
	if err := menuID.Validate(); err != nil {
		return GetEmployeeMenuPhotoQuery{}, err
	}
	return GetEmployeeMenuPhotoQuery{menuID: menuID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEmployeeMenuPhotoQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeMenuPhotoQueryIsNotConstructed)
}

func (q GetEmployeeMenuPhotoQuery) MenuID() kernel.UUID { return q.menuID }

type PhotoView struct {
	ContentType string
	Data        []byte
}
