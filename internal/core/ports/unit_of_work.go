// Package ports defines the contracts between the core and its adapters:
// repositories over the aggregates, the unit of work that binds them to one
// transaction, and the outbound notification sink.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	PatientRepository() PatientRepository
	PatientOrderRepository() PatientOrderRepository
	EmployeeOrderRepository() EmployeeOrderRepository
	WeeklyMenuRepository() WeeklyMenuRepository
	EmployeeMenuRepository() EmployeeMenuRepository
	NotificationRepository() NotificationRepository
	AccountRepository() AccountRepository
}
