package queries

import (
	"errors"
	"fmt"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrGetPatientOrdersQueryIsNotConstructed = errors.New(
	"GetPatientOrdersQuery must be created via NewGetPatientOrdersQuery constructor",
)

// GetPatientOrdersQuery lists patient orders, newest first, optionally
// restricted to one status.
//
// Example:
//
//	q, err := queries.NewGetPatientOrdersQuery(actor, order.AwaitingApproval)
//	views, err := handler.Handle(ctx, q)
type GetPatientOrdersQuery struct {
	actor  kernel.Actor
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetPatientOrdersQuery accepts order.Unknown as "every status".
func NewGetPatientOrdersQuery(actor kernel.Actor, status order.Status) (GetPatientOrdersQuery, error) {
	var statusErr error
	if status != order.Unknown && !order.TableFor(order.PatientOrderKind).Knows(status) {
		statusErr = errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a patient order status", status))
	}
	if err := errors.Join(actor.Validate(), statusErr); err != nil {
		return GetPatientOrdersQuery{}, err
	}
	return GetPatientOrdersQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPatientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPatientOrdersQueryIsNotConstructed)
}

func (q GetPatientOrdersQuery) Actor() kernel.Actor  { return q.actor }
func (q GetPatientOrdersQuery) Status() order.Status { return q.status }

type PatientOrderView struct {
	ID           kernel.UUID
	PatientID    kernel.UUID
	PatientName  string
	Room         string
	OrderedBy    kernel.UUID
	MealType     kernel.MealType
	Day          kernel.DayOfWeek
	MenuText     string
	Instructions string
	LifecycleView
}
