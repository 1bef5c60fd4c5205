package kernel

import (
	"fmt"
	"time"

	"clinicmeals/internal/pkg/errs"
)

// DayOfWeek is a day of the weekly menu, named in French. Only names are
// accepted as input; numeric indexes are rejected by DayOfWeekFromString.
type DayOfWeek int

const (
	UnknownDay DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func getDayLabels() map[DayOfWeek]string {
	//nolint:exhaustive // UnknownDay has no label
	return map[DayOfWeek]string{
		Monday:    "Lundi",
		Tuesday:   "Mardi",
		Wednesday: "Mercredi",
		Thursday:  "Jeudi",
		Friday:    "Vendredi",
		Saturday:  "Samedi",
		Sunday:    "Dimanche",
	}
}

// DayOfWeekFromString parses a French day name, e.g. "Lundi".
func DayOfWeekFromString(label string) (DayOfWeek, error) {
	for d, l := range getDayLabels() {
		if l == label {
			return d, nil
		}
	}
	return UnknownDay, errs.NewValueIsInvalidErrorWithCause("day of week", fmt.Errorf("%q is not a day name", label))
}

// DayOfWeekFromTime returns the menu day of t in its own location.
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return DayOfWeek(t.Weekday())
}

func (d DayOfWeek) Validate() error {
	if _, ok := getDayLabels()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("day of week", fmt.Errorf("%d is not a valid day", d))
	}
	return nil
}

func (d DayOfWeek) String() string {
	if l, ok := getDayLabels()[d]; ok {
		return l
	}
	return "Unknown"
}
