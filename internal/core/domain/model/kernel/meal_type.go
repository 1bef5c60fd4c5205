package kernel

import (
	"fmt"

	"clinicmeals/internal/pkg/errs"
)

// MealType is the daily service slot a menu belongs to.
type MealType int

const (
	UnknownMealType MealType = iota
	Breakfast
	Lunch
	Dinner
	Snack
)

func getMealTypeLabels() map[MealType]string {
	//nolint:exhaustive // UnknownMealType has no label
	return map[MealType]string{
		Breakfast: "Petit-déjeuner",
		Lunch:     "Déjeuner",
		Dinner:    "Dîner",
		Snack:     "Collation",
	}
}

// MealTypeFromString parses a meal type from its label, e.g. "Déjeuner".
func MealTypeFromString(label string) (MealType, error) {
	for m, l := range getMealTypeLabels() {
		if l == label {
			return m, nil
		}
	}
	return UnknownMealType, errs.NewValueIsInvalidErrorWithCause("meal type", fmt.Errorf("%q is not a known meal type", label))
}

func (m MealType) Validate() error {
	if _, ok := getMealTypeLabels()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("meal type", fmt.Errorf("%d is not a valid meal type", m))
	}
	return nil
}

func (m MealType) String() string {
	if l, ok := getMealTypeLabels()[m]; ok {
		return l
	}
	return "Unknown"
}
