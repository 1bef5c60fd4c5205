// Package postgres provides the GORM-based Unit of Work over the clinic
// schema. A unit of work binds every repository it hands out to one
// transaction, so an order status change and its notification outbox row
// commit or roll back together.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.EmployeeOrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op that returns
// gorm.ErrInvalidTransaction, which is why handlers defer it unconditionally
// and discard the result.
//
// Each UnitOfWork instance holds its own transaction; goroutines must not
// share one.
package postgres

import (
	"context"

	"clinicmeals/internal/adapters/out/postgres/accountrepo"
	"clinicmeals/internal/adapters/out/postgres/catalogrepo"
	"clinicmeals/internal/adapters/out/postgres/notificationrepo"
	"clinicmeals/internal/adapters/out/postgres/orderrepo"
	"clinicmeals/internal/adapters/out/postgres/patientrepo"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/core/ports"
	"clinicmeals/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on one connection pool.
// The price calculator is handed to the employee order repository, which
// re-checks stored totals on load.
type GormUnitOfWorkFactory struct {
	db   *gorm.DB
	calc order.PriceCalculator
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, services.NewPricingCalculator())
func NewGormUnitOfWorkFactory(db *gorm.DB, calc order.PriceCalculator) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, calc: calc}
}

// Create produces a fresh UnitOfWork with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		calc:              f.calc,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates its repositories wrote.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	calc              order.PriceCalculator
	trackedAggregates []TrackedAggregate
}

// Begin opens the transaction. Calling it twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewPersistenceError("begin transaction", tx.Error)
	}
	uow.tx = tx
	return nil
}

// Commit makes the writes permanent and closes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewPersistenceError("commit transaction", err)
	}
	return nil
}

// Rollback discards the writes and the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// conn is the transaction when one is open, the pool otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) PatientRepository() ports.PatientRepository {
	return patientrepo.NewGormPatientRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PatientOrderRepository() ports.PatientOrderRepository {
	return orderrepo.NewGormPatientOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EmployeeOrderRepository() ports.EmployeeOrderRepository {
	return orderrepo.NewGormEmployeeOrderRepository(uow.conn(), uow, uow.calc)
}

func (uow *GormUnitOfWork) WeeklyMenuRepository() ports.WeeklyMenuRepository {
	return catalogrepo.NewGormWeeklyMenuRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EmployeeMenuRepository() ports.EmployeeMenuRepository {
	return catalogrepo.NewGormEmployeeMenuRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since Begin, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return uow.trackedAggregates
}
