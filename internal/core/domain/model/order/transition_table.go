package order

import (
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

// Grant lets a role holding Permission take an edge. With OwnerOnly the actor
// must also be the owner of the order.
type Grant struct {
	Permission kernel.Permission
	OwnerOnly  bool
}

// Edge is one allowed status change and the grants that unlock it.
type Edge struct {
	From   Status
	To     Status
	Grants []Grant
}

// TransitionTable is the state machine of one order kind. Both kinds share
// this type; only the edges differ.
type TransitionTable struct {
	kind    Kind
	initial Status
	edges   map[Status]map[Status][]Grant
}

// NewTransitionTable builds a table from its edge list. The initial status is
// the only one an order may be created in.
func NewTransitionTable(kind Kind, initial Status, edges ...Edge) *TransitionTable {
	t := &TransitionTable{
		kind:    kind,
		initial: initial,
		edges:   make(map[Status]map[Status][]Grant),
	}
	for _, e := range edges {
		if t.edges[e.From] == nil {
			t.edges[e.From] = make(map[Status][]Grant)
		}
		t.edges[e.From][e.To] = e.Grants
	}
	return t
}

var (
	patientOrderTable = NewTransitionTable(PatientOrderKind, AwaitingApproval,
		Edge{AwaitingApproval, Approved, []Grant{{Permission: kernel.ApproveOrder}}},
		Edge{Approved, Preparing, []Grant{{Permission: kernel.StartPreparation}}},
		Edge{Preparing, ReadyForDelivery, []Grant{{Permission: kernel.MarkReady}}},
		Edge{ReadyForDelivery, Delivered, []Grant{{Permission: kernel.DeliverOrder}}},
		Edge{AwaitingApproval, Cancelled, []Grant{{Permission: kernel.CancelPatientOrder}}},
	)

	employeeOrderTable = NewTransitionTable(EmployeeOrderKind, Ordered,
		Edge{Ordered, Preparing, []Grant{{Permission: kernel.StartPreparation}}},
		Edge{Preparing, ReadyForDelivery, []Grant{{Permission: kernel.MarkReady}}},
		Edge{ReadyForDelivery, Delivered, []Grant{{Permission: kernel.DeliverOrder}}},
		Edge{Ordered, Cancelled, []Grant{
			{Permission: kernel.CancelAnyEmployeeOrder},
			{Permission: kernel.CancelOwnEmployeeOrder, OwnerOnly: true},
		}},
	)
)

// TableFor returns the machine of the given kind, or nil for an unknown kind.
func TableFor(kind Kind) *TransitionTable {
	switch kind {
	case PatientOrderKind:
		return patientOrderTable
	case EmployeeOrderKind:
		return employeeOrderTable
	default:
		return nil
	}
}

func (t *TransitionTable) Kind() Kind {
	return t.kind
}

func (t *TransitionTable) Initial() Status {
	return t.initial
}

// Targets lists the statuses reachable from s in one step, regardless of role.
func (t *TransitionTable) Targets(s Status) []Status {
	targets := make([]Status, 0, len(t.edges[s]))
	for to := range t.edges[s] {
		targets = append(targets, to)
	}
	return targets
}

// Knows reports whether s belongs to this machine.
func (t *TransitionTable) Knows(s Status) bool {
	if s == t.initial {
		return true
	}
	for _, tos := range t.edges {
		if _, ok := tos[s]; ok {
			return true
		}
	}
	return false
}

// Authorize checks that the edge from -> to exists and that actor may take it.
// An unreachable target yields a *errs.TransitionIsNotAllowedError; a missing
// permission yields the same error wrapping a *errs.PermissionDeniedError.
func (t *TransitionTable) Authorize(from, to Status, actor kernel.Actor, owner kernel.UUID) error {
	grants, ok := t.edges[from][to]
	if !ok {
		return errs.NewTransitionIsNotAllowedError(t.kind.String(), from.String(), to.String())
	}

	for _, g := range grants {
		if !actor.Role().Can(g.Permission) {
			continue
		}
		if g.OwnerOnly && !actor.ID().IsEqual(owner) {
			continue
		}
		return nil
	}

	return errs.NewTransitionIsNotAllowedErrorWithCause(
		t.kind.String(), from.String(), to.String(),
		errs.NewPermissionDeniedError(actor.Role().String(), grants[0].Permission.String()),
	)
}
