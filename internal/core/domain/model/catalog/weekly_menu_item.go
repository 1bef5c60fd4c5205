package catalog

import (
	"errors"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

var ErrWeeklyMenuItemIsNotConstructed = errors.New("WeeklyMenuItem must be created via NewWeeklyMenuItem constructor")

// Slot is the (day, diet, meal type) key of the weekly patient menu.
type Slot struct {
	Day      kernel.DayOfWeek
	Diet     kernel.Diet
	MealType kernel.MealType
}

func (s Slot) Validate() error {
	return errors.Join(s.Day.Validate(), s.Diet.Validate(), s.MealType.Validate())
}

func (s Slot) String() string {
	return s.Day.String() + "/" + s.Diet.String() + "/" + s.MealType.String()
}

// WeeklyMenuItem is one dish of the weekly patient menu.
type WeeklyMenuItem struct {
	id          kernel.UUID
	slot        Slot
	dishName    string
	description string
	available   bool
	createdAt   time.Time

	isConstructed bool
}

// NewWeeklyMenuItem creates an available item.
func NewWeeklyMenuItem(id kernel.UUID, slot Slot, dishName, description string, createdAt time.Time) (*WeeklyMenuItem, error) {
	return RestoreWeeklyMenuItem(id, slot, dishName, description, true, createdAt)
}

func RestoreWeeklyMenuItem(
	id kernel.UUID,
	slot Slot,
	dishName, description string,
	available bool,
	createdAt time.Time,
) (*WeeklyMenuItem, error) {
	var errList []error
	errList = append(errList, id.Validate(), slot.Validate())
	if strings.TrimSpace(dishName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("dish name"))
	}
	if createdAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("created at"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &WeeklyMenuItem{
		id:            id,
		slot:          slot,
		dishName:      strings.TrimSpace(dishName),
		description:   strings.TrimSpace(description),
		available:     available,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (w *WeeklyMenuItem) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWeeklyMenuItemIsNotConstructed
	}
	return nil
}

func (w *WeeklyMenuItem) ID() kernel.UUID      { return w.id }
func (w *WeeklyMenuItem) Slot() Slot           { return w.slot }
func (w *WeeklyMenuItem) DishName() string     { return w.dishName }
func (w *WeeklyMenuItem) Description() string  { return w.description }
func (w *WeeklyMenuItem) IsAvailable() bool    { return w.available }
func (w *WeeklyMenuItem) CreatedAt() time.Time { return w.createdAt }

// DishText is the text frozen into a patient order: the dish name, followed
// by " - description" when there is one.
func (w *WeeklyMenuItem) DishText() string {
	if w.description == "" {
		return w.dishName
	}
	return w.dishName + " - " + w.description
}

func (w *WeeklyMenuItem) SetAvailable(available bool) {
	w.available = available
}
