package kernel

import (
	"fmt"

	"clinicmeals/internal/pkg/errs"
)

// Diet is the prescribed dietary restriction of a patient. It is one of the
// three keys of the weekly patient menu.
type Diet int

const (
	UnknownDiet Diet = iota
	DietNormal
	DietDiabetic
	DietSaltFree
	DietGlutenFree
	DietLowCalorie
	DietBlended
)

func getDietLabels() map[Diet]string {
	//nolint:exhaustive // UnknownDiet has no label
	return map[Diet]string{
		DietNormal:     "Normal",
		DietDiabetic:   "Diabétique",
		DietSaltFree:   "Sans sel",
		DietGlutenFree: "Sans gluten",
		DietLowCalorie: "Hypocalorique",
		DietBlended:    "Mixé",
	}
}

// AllDiets lists the valid diets in declaration order.
func AllDiets() []Diet {
	return []Diet{DietNormal, DietDiabetic, DietSaltFree, DietGlutenFree, DietLowCalorie, DietBlended}
}

// DietFromString parses a diet from its label, e.g. "Diabétique".
func DietFromString(label string) (Diet, error) {
	for d, l := range getDietLabels() {
		if l == label {
			return d, nil
		}
	}
	return UnknownDiet, errs.NewValueIsInvalidErrorWithCause("diet", fmt.Errorf("%q is not a known diet", label))
}

func (d Diet) Validate() error {
	if _, ok := getDietLabels()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("diet", fmt.Errorf("%d is not a valid diet", d))
	}
	return nil
}

// String returns the label used in the catalog and on the wire.
func (d Diet) String() string {
	if l, ok := getDietLabels()[d]; ok {
		return l
	}
	return "Unknown"
}
