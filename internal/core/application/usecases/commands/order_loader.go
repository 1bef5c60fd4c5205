package commands

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
)

type orderRepos interface {
	PatientOrderRepoFactory
	EmployeeOrderRepoFactory
}

func loadOrder(ctx context.Context, uow orderRepos, kind order.Kind, id kernel.UUID) (order.Order, error) {
	switch kind {
	case order.PatientOrderKind:
		o, err := uow.PatientOrderRepository().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return o, nil
	case order.EmployeeOrderKind:
		o, err := uow.EmployeeOrderRepository().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, kind.Validate()
	}
}

func saveOrder(ctx context.Context, uow orderRepos, o order.Order) error {
	switch typed := o.(type) {
	case *order.PatientOrder:
		return uow.PatientOrderRepository().Update(ctx, typed)
	case *order.EmployeeOrder:
		return uow.EmployeeOrderRepository().Update(ctx, typed)
	default:
		return o.Kind().Validate()
	}
}

func deleteOrder(ctx context.Context, uow orderRepos, o order.Order) error {
	switch typed := o.(type) {
	case *order.PatientOrder:
		return uow.PatientOrderRepository().Delete(ctx, typed)
	case *order.EmployeeOrder:
		return uow.EmployeeOrderRepository().Delete(ctx, typed)
	default:
		return o.Kind().Validate()
	}
}
