package kernel

import (
	"fmt"

	"clinicmeals/internal/pkg/errs"
)

// Role is the staff role carried by a verified session claim.
type Role int

const (
	UnknownRole Role = iota
	Nurse
	Kitchen
	Employee
	Admin
)

func getRoleLabels() map[Role]string {
	//nolint:exhaustive // UnknownRole has no label
	return map[Role]string{
		Nurse:    "Infirmier",
		Kitchen:  "Cuisine",
		Employee: "Employé",
		Admin:    "Administrateur",
	}
}

// RoleFromString parses a role label, e.g. "Cuisine".
func RoleFromString(label string) (Role, error) {
	for r, l := range getRoleLabels() {
		if l == label {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", label))
}

func (r Role) Validate() error {
	if _, ok := getRoleLabels()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if l, ok := getRoleLabels()[r]; ok {
		return l
	}
	return "Unknown"
}

// Permission is a capability granted to one or more roles.
type Permission int

const (
	ManagePatients Permission = iota + 1
	PlacePatientOrder
	PlaceEmployeeOrder
	ManageCatalog
	ApproveOrder
	StartPreparation
	MarkReady
	DeliverOrder
	CancelPatientOrder
	CancelOwnEmployeeOrder
	CancelAnyEmployeeOrder
	DeleteOrder
	ManageAccounts
	ViewPatientOrders
	ViewAllEmployeeOrders
	ViewKitchenBoard
)

func getPermissionNames() map[Permission]string {
	return map[Permission]string{
		ManagePatients:         "ManagePatients",
		PlacePatientOrder:      "PlacePatientOrder",
		PlaceEmployeeOrder:     "PlaceEmployeeOrder",
		ManageCatalog:          "ManageCatalog",
		ApproveOrder:           "ApproveOrder",
		StartPreparation:       "StartPreparation",
		MarkReady:              "MarkReady",
		DeliverOrder:           "DeliverOrder",
		CancelPatientOrder:     "CancelPatientOrder",
		CancelOwnEmployeeOrder: "CancelOwnEmployeeOrder",
		CancelAnyEmployeeOrder: "CancelAnyEmployeeOrder",
		DeleteOrder:            "DeleteOrder",
		ManageAccounts:         "ManageAccounts",
		ViewPatientOrders:      "ViewPatientOrders",
		ViewAllEmployeeOrders:  "ViewAllEmployeeOrders",
		ViewKitchenBoard:       "ViewKitchenBoard",
	}
}

func (p Permission) String() string {
	if n, ok := getPermissionNames()[p]; ok {
		return n
	}
	return "Unknown"
}

// rolePermissions is the declared permission set of each role.
var rolePermissions = map[Role]map[Permission]struct{}{
	Nurse: set(
		ManagePatients, PlacePatientOrder, PlaceEmployeeOrder,
		DeliverOrder, CancelPatientOrder, CancelOwnEmployeeOrder,
		ViewPatientOrders,
	),
	Kitchen: set(
		ManageCatalog, ApproveOrder, StartPreparation, MarkReady, DeliverOrder,
		CancelPatientOrder, CancelAnyEmployeeOrder, DeleteOrder,
		ViewPatientOrders, ViewAllEmployeeOrders, ViewKitchenBoard,
	),
	Employee: set(PlaceEmployeeOrder, CancelOwnEmployeeOrder),
	Admin: set(
		ManagePatients, ManageCatalog, DeleteOrder, ManageAccounts,
		ViewPatientOrders, ViewAllEmployeeOrders,
	),
}

func set(ps ...Permission) map[Permission]struct{} {
	m := make(map[Permission]struct{}, len(ps))
	for _, p := range ps {
		m[p] = struct{}{}
	}
	return m
}

// Can reports whether the role holds the permission.
func (r Role) Can(p Permission) bool {
	_, ok := rolePermissions[r][p]
	return ok
}

// Require returns a *errs.PermissionDeniedError when the role lacks p.
func (r Role) Require(p Permission) error {
	if !r.Can(p) {
		return errs.NewPermissionDeniedError(r.String(), p.String())
	}
	return nil
}

// Actor is the verified identity performing a request.
type Actor struct {
	id   UUID
	role Role
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() UUID   { return a.id }
func (a Actor) Role() Role { return a.role }

func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
