package order

import (
	"fmt"

	"clinicmeals/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Which statuses an order may
// visit depends on its Kind; see TransitionTable.
//
//	PatientOrder:  AwaitingApproval ─> Approved ─┐
//	                      │                       ├─> Preparing ─> ReadyForDelivery ─> Delivered
//	EmployeeOrder: Ordered ─────────────────────┘
//	                      │
//	                      └─> Cancelled (initial status only)
type Status int

const (
	// Unknown (0) catches uninitialised values.
	Unknown Status = iota
	AwaitingApproval
	Approved
	Ordered
	Preparing
	ReadyForDelivery
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		AwaitingApproval: "AwaitingApproval",
		Approved:         "Approved",
		Ordered:          "Ordered",
		Preparing:        "Preparing",
		ReadyForDelivery: "ReadyForDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// StatusFromString parses the persisted and wire representation.
func StatusFromString(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if str == s && st != Unknown {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, typically read from the
// database or the API.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
