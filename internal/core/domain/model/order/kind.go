package order

import (
	"fmt"

	"clinicmeals/internal/pkg/errs"
)

// Kind tags which of the two order machines applies.
type Kind int

const (
	UnknownKind Kind = iota
	PatientOrderKind
	EmployeeOrderKind
)

// KindFromString accepts the type name ("PatientOrder") or the URL slug
// ("patient").
func KindFromString(s string) (Kind, error) {
	switch s {
	case "PatientOrder", "patient":
		return PatientOrderKind, nil
	case "EmployeeOrder", "employee":
		return EmployeeOrderKind, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause("order kind", fmt.Errorf("%q is not an order kind", s))
	}
}

func (k Kind) Validate() error {
	if k != PatientOrderKind && k != EmployeeOrderKind {
		return errs.NewValueIsInvalidErrorWithCause("order kind", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case PatientOrderKind:
		return "PatientOrder"
	case EmployeeOrderKind:
		return "EmployeeOrder"
	default:
		return "Unknown"
	}
}

// Slug is the lower-case form used in URLs.
func (k Kind) Slug() string {
	switch k {
	case PatientOrderKind:
		return "patient"
	case EmployeeOrderKind:
		return "employee"
	default:
		return "unknown"
	}
}
