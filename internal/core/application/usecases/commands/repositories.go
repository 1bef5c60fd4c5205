// Package commands contains the use cases that change state. Every handler
// follows the same shape: validate the command, check the actor's permission,
// open a unit of work, apply the domain operation, commit.
package commands

import (
	"context"

	"clinicmeals/internal/core/ports"
)

// Unit of work interfaces. Each handler asks only for the repositories it
// touches; the postgres unit of work implements all of them.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PatientRepoFactory interface {
		PatientRepository() ports.PatientRepository
	}

	PatientOrderRepoFactory interface {
		PatientOrderRepository() ports.PatientOrderRepository
	}

	EmployeeOrderRepoFactory interface {
		EmployeeOrderRepository() ports.EmployeeOrderRepository
	}

	WeeklyMenuRepoFactory interface {
		WeeklyMenuRepository() ports.WeeklyMenuRepository
	}

	EmployeeMenuRepoFactory interface {
		EmployeeMenuRepository() ports.EmployeeMenuRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// PatientUoW covers patient administration.
	PatientUoW interface {
		TxManager
		PatientRepoFactory
	}

	// PatientOrderUoW covers placing a patient order: the patient, the weekly
	// catalog snapshot and the new order.
	PatientOrderUoW interface {
		TxManager
		PatientRepoFactory
		WeeklyMenuRepoFactory
		PatientOrderRepoFactory
	}

	// EmployeeOrderUoW covers placing an employee order.
	EmployeeOrderUoW interface {
		TxManager
		EmployeeMenuRepoFactory
		EmployeeOrderRepoFactory
	}

	// OrderUoW covers status changes and deletes of both order kinds, with the
	// notification outbox in the same transaction.
	OrderUoW interface {
		TxManager
		PatientOrderRepoFactory
		EmployeeOrderRepoFactory
		NotificationRepoFactory
	}

	// CatalogUoW covers kitchen edits of both catalogs.
	CatalogUoW interface {
		TxManager
		WeeklyMenuRepoFactory
		EmployeeMenuRepoFactory
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// UoWFactory creates a unit of work of type T per command.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   // ... repository calls
	//   err = uow.Commit(ctx)
	UoWFactory[T TxManager] interface {
		Create() T
	}
)
