package queries

import (
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var ErrGetEmployeeOrdersQueryIsNotConstructed = errors.New(
	"GetEmployeeOrdersQuery must be created via NewGetEmployeeOrdersQuery constructor",
)

// GetEmployeeOrdersQuery lists the actor's own orders, or every employee
// order when mine is false and the role may see them all.
type GetEmployeeOrdersQuery struct {
	actor kernel.Actor
	mine  bool

	guard guard.ConstructorGuard
}

func NewGetEmployeeOrdersQuery(actor kernel.Actor, mine bool) (GetEmployeeOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetEmployeeOrdersQuery{}, err
	}
	return GetEmployeeOrdersQuery{actor: actor, mine: mine, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEmployeeOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeOrdersQueryIsNotConstructed)
}

func (q GetEmployeeOrdersQuery) Actor() kernel.Actor { return q.actor }
func (q GetEmployeeOrdersQuery) Mine() bool          { return q.mine }

type EmployeeOrderView struct {
	ID               kernel.UUID
	EmployeeID       kernel.UUID
	MenuID           kernel.UUID
	MenuName         string
	BasePrice        kernel.Price
	Accompaniments   int
	TotalPrice       kernel.Price
	DeliveryLocation string
	Instructions     string
	LifecycleView
}
