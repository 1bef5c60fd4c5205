package queries

import (
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/guard"
)

var ErrGetKitchenBoardQueryIsNotConstructed = errors.New(
	"GetKitchenBoardQuery must be created via NewGetKitchenBoardQuery constructor",
)

// GetKitchenBoardQuery lists the active orders of both kinds, oldest first,
// so the kitchen works through them in arrival order.
type GetKitchenBoardQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetKitchenBoardQuery(actor kernel.Actor) (GetKitchenBoardQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetKitchenBoardQuery{}, err
	}
	return GetKitchenBoardQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetKitchenBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenBoardQueryIsNotConstructed)
}

func (q GetKitchenBoardQuery) Actor() kernel.Actor { return q.actor }

// BoardEntry is one card of the kitchen board. Destination is the patient
// and room for a patient order, the delivery location for an employee order.
type BoardEntry struct {
	Kind         order.Kind
	ID           kernel.UUID
	Menu         string
	Destination  string
	Instructions string
	Status       order.Status
	CreatedAt    time.Time
}
