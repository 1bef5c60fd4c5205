package commands

import (
	"context"
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"
)

var ErrEmployeeMenuIsUnavailable = errs.NewValueIsInvalidErrorWithCause("menu", errors.New("menu is not available"))

type CreateEmployeeOrderCommandHandler struct {
	uowFactory UoWFactory[EmployeeOrderUoW]
	calculator order.PriceCalculator
}

func NewCreateEmployeeOrderCommandHandler(
	uowFactory UoWFactory[EmployeeOrderUoW],
	calculator order.PriceCalculator,
) CreateEmployeeOrderCommandHandler {
	return CreateEmployeeOrderCommandHandler{uowFactory: uowFactory, calculator: calculator}
}

// Handle places the order and returns its total price.
func (h *CreateEmployeeOrderCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeOrderCommand) (kernel.Price, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Price{}, err
	}
	if err := cmd.Actor().Role().Require(kernel.PlaceEmployeeOrder); err != nil {
		return kernel.Price{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Price{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menu, err := uow.EmployeeMenuRepository().Get(ctx, cmd.MenuID())
	if err != nil {
		return kernel.Price{}, err
	}
	if !menu.IsAvailable() {
		return kernel.Price{}, ErrEmployeeMenuIsUnavailable
	}

	o, err := order.NewEmployeeOrder(order.EmployeeOrderParams{
		ID:               cmd.OrderID(),
		EmployeeID:       cmd.Actor().ID(),
		MenuID:           menu.ID(),
		MenuName:         menu.Name(),
		BasePrice:        menu.BasePrice(),
		Accompaniments:   cmd.Accompaniments(),
		DeliveryLocation: cmd.DeliveryLocation(),
		Instructions:     cmd.Instructions(),
	}, h.calculator, time.Now().UTC())
	if err != nil {
		return kernel.Price{}, err
	}

	if err = uow.EmployeeOrderRepository().Add(ctx, o); err != nil {
		return kernel.Price{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return kernel.Price{}, err
	}

	return o.TotalPrice(), nil
}
