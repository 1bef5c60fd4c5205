package ports

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
)

// PatientOrderRepository persists patient orders.
type PatientOrderRepository interface {
	Add(ctx context.Context, o *order.PatientOrder) error
	// Update writes the order only if the stored version still equals
	// o.Lifecycle().Version(), and bumps it. A lost race yields
	// *errs.ConcurrentModificationError; a vanished row *errs.ObjectNotFoundError.
	Update(ctx context.Context, o *order.PatientOrder) error
	Get(ctx context.Context, id kernel.UUID) (*order.PatientOrder, error)
	// Delete removes the row under the same version check as Update.
	Delete(ctx context.Context, o *order.PatientOrder) error
}

// EmployeeOrderRepository persists employee orders with the same
// compare-and-swap contract as PatientOrderRepository.
type EmployeeOrderRepository interface {
	Add(ctx context.Context, o *order.EmployeeOrder) error
	Update(ctx context.Context, o *order.EmployeeOrder) error
	Get(ctx context.Context, id kernel.UUID) (*order.EmployeeOrder, error)
	Delete(ctx context.Context, o *order.EmployeeOrder) error
}
