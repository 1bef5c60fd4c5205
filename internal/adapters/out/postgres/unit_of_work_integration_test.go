package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "clinicmeals/internal/adapters/out/postgres"
	"clinicmeals/internal/adapters/out/postgres/pgtest"
	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/notification"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/core/domain/services"
	"clinicmeals/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL with the service migrations applied.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory
	kitchen kernel.Actor
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB, services.NewPricingCalculator())

	suite.kitchen, err = kernel.NewActor(kernel.NewUUID(), kernel.Kitchen)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.PatientRepository())
	suite.NotNil(uow1.EmployeeOrderRepository())
	suite.NotNil(uow2.NotificationRepository())
	suite.NotNil(uow2.AccountRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin keeps the open transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStatusChangeAndOutboxCommitTogether() {
	ctx := context.Background()
	o := suite.addEmployeeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.EmployeeOrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Preparing, suite.kitchen, time.Now()))
	suite.Require().NoError(uow.EmployeeOrderRepository().Update(ctx, loaded))
	n := suite.notificationFor(loaded)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	got, err := check.EmployeeOrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, got.Status())
	_, err = check.NotificationRepository().Get(ctx, n.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsStatusChangeAndOutbox() {
	ctx := context.Background()
	o := suite.addEmployeeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.EmployeeOrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Preparing, suite.kitchen, time.Now()))
	suite.Require().NoError(uow.EmployeeOrderRepository().Update(ctx, loaded))
	n := suite.notificationFor(loaded)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	got, err := check.EmployeeOrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ordered, got.Status())
	suite.Equal(0, got.Lifecycle().Version())
	_, err = check.NotificationRepository().Get(ctx, n.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenInstances() {
	ctx := context.Background()
	menu := suite.addMenu()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	o1 := suite.newEmployeeOrder(menu)
	o2 := suite.newEmployeeOrder(menu)
	suite.Require().NoError(uow1.EmployeeOrderRepository().Add(ctx, o1))
	suite.Require().NoError(uow2.EmployeeOrderRepository().Add(ctx, o2))

	_, err := uow1.EmployeeOrderRepository().Get(ctx, o2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = uow2.EmployeeOrderRepository().Get(ctx, o1.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.EmployeeOrderRepository().Get(ctx, o1.ID())
	suite.Require().NoError(err)
	_, err = check.EmployeeOrderRepository().Get(ctx, o2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTracksWrittenAggregates() {
	ctx := context.Background()
	menu := suite.addMenu()
	o := suite.newEmployeeOrder(menu)

	uow, ok := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EmployeeOrderRepository().Add(ctx, o))
	n := suite.notificationFor(o)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))

	tracked := uow.TrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.Equal(o.ID(), tracked[0].ID)
	suite.Same(o, tracked[0].Aggregate)
	suite.Equal(n.ID(), tracked[1].ID)

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(uow.TrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransactionWritesImmediately() {
	ctx := context.Background()
	menu := suite.addMenu()

	got, err := suite.factory.Create().EmployeeMenuRepository().Get(ctx, menu.ID())
	suite.Require().NoError(err)
	suite.Equal("Poulet yassa", got.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) addMenu() *catalog.EmployeeMenu {
	menu, err := catalog.NewEmployeeMenu(kernel.NewUUID(), "Poulet yassa", "", kernel.MustPrice(1500), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().EmployeeMenuRepository().Add(context.Background(), menu))
	return menu
}

func (suite *UnitOfWorkIntegrationTestSuite) newEmployeeOrder(menu *catalog.EmployeeMenu) *order.EmployeeOrder {
	o, err := order.NewEmployeeOrder(order.EmployeeOrderParams{
		ID:               kernel.NewUUID(),
		EmployeeID:       kernel.NewUUID(),
		MenuID:           menu.ID(),
		MenuName:         menu.Name(),
		BasePrice:        menu.BasePrice(),
		Accompaniments:   1,
		DeliveryLocation: "Radiologie",
	}, services.NewPricingCalculator(), time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) addEmployeeOrder() *order.EmployeeOrder {
	o := suite.newEmployeeOrder(suite.addMenu())
	suite.Require().NoError(suite.factory.Create().EmployeeOrderRepository().Add(context.Background(), o))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) notificationFor(o *order.EmployeeOrder) *notification.Notification {
	n, err := notification.NewNotification(kernel.NewUUID(), o.Recipient(), o.ID(),
		"Votre commande « Poulet yassa » est en préparation.", time.Now())
	suite.Require().NoError(err)
	return n
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
