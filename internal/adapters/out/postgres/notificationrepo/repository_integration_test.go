package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"clinicmeals/internal/adapters/out/postgres/notificationrepo"
	"clinicmeals/internal/adapters/out/postgres/pgtest"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/notification"
	"clinicmeals/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.pg.DB, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) addNotification(createdAt time.Time) *notification.Notification {
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Votre commande « Poulet yassa » est en préparation.", createdAt.UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), n))
	return n
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddGetAndMarkRead() {
	ctx := context.Background()
	n := suite.addNotification(time.Now())

	recipient, err := kernel.NewActor(n.RecipientID(), kernel.Employee)
	suite.Require().NoError(err)
	suite.Require().NoError(n.MarkRead(recipient))
	suite.Require().NoError(suite.repository.MarkRead(ctx, n))

	got, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(got.IsRead())
	suite.False(got.IsDispatched())
	suite.Equal(n.Message(), got.Message())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestListUndispatched_OldestFirstWithLimit() {
	ctx := context.Background()
	now := time.Now()
	newest := suite.addNotification(now)
	oldest := suite.addNotification(now.Add(-2 * time.Minute))
	middle := suite.addNotification(now.Add(-time.Minute))
	dispatched := suite.addNotification(now.Add(-time.Hour))
	dispatched.MarkDispatched(now)
	suite.Require().NoError(suite.repository.MarkDispatched(ctx, dispatched))

	got, err := suite.repository.ListUndispatched(ctx, now, 2)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(oldest.ID(), got[0].ID())
	suite.Equal(middle.ID(), got[1].ID())

	all, err := suite.repository.ListUndispatched(ctx, now, 10)
	suite.Require().NoError(err)
	suite.Len(all, 3)
	suite.Equal(newest.ID(), all[2].ID())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestListUndispatched_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	suite.addNotification(time.Now())
	suite.addNotification(time.Now())

	first := suite.pg.DB.Begin()
	suite.Require().NoError(first.Error)
	defer first.Rollback()
	second := suite.pg.DB.Begin()
	suite.Require().NoError(second.Error)
	defer second.Rollback()

	locked, err := notificationrepo.NewGormNotificationRepository(first, suite.tracker).ListUndispatched(ctx, time.Now(), 10)
	suite.Require().NoError(err)
	suite.Len(locked, 2)

	rest, err := notificationrepo.NewGormNotificationRepository(second, suite.tracker).ListUndispatched(ctx, time.Now(), 10)
	suite.Require().NoError(err)
	suite.Empty(rest)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkReadWaitsForRelayAndKeepsDispatchTime() {
	ctx := context.Background()
	n := suite.addNotification(time.Now())
	recipient, err := kernel.NewActor(n.RecipientID(), kernel.Nurse)
	suite.Require().NoError(err)

	relayTx := suite.pg.DB.Begin()
	suite.Require().NoError(relayTx.Error)
	defer relayTx.Rollback()
	relay := notificationrepo.NewGormNotificationRepository(relayTx, suite.tracker)
	pending, err := relay.ListUndispatched(ctx, time.Now(), 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)

	done := make(chan error, 1)
	go func() {
		readTx := suite.pg.DB.Begin()
		if readTx.Error != nil {
			done <- readTx.Error
			return
		}
		reader := notificationrepo.NewGormNotificationRepository(readTx, suite.tracker)
		loaded, getErr := reader.Get(ctx, n.ID())
		if getErr == nil {
			getErr = loaded.MarkRead(recipient)
		}
		if getErr == nil {
			getErr = reader.MarkRead(ctx, loaded)
		}
		if getErr != nil {
			readTx.Rollback()
			done <- getErr
			return
		}
		done <- readTx.Commit().Error
	}()

	time.Sleep(200 * time.Millisecond)
	pending[0].MarkDispatched(time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(relay.MarkDispatched(ctx, pending[0]))
	suite.Require().NoError(relayTx.Commit().Error)
	suite.Require().NoError(<-done)

	got, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(got.IsRead())
	suite.True(got.IsDispatched())

	again, err := suite.repository.ListUndispatched(ctx, time.Now(), 10)
	suite.Require().NoError(err)
	suite.Empty(again)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestStaleRelayCopyKeepsReadFlag() {
	ctx := context.Background()
	n := suite.addNotification(time.Now())
	stale, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)

	recipient, err := kernel.NewActor(n.RecipientID(), kernel.Nurse)
	suite.Require().NoError(err)
	suite.Require().NoError(n.MarkRead(recipient))
	suite.Require().NoError(suite.repository.MarkRead(ctx, n))

	stale.MarkDispatched(time.Now())
	suite.Require().NoError(suite.repository.MarkDispatched(ctx, stale))
	stale.RecordDispatchFailure(time.Now())
	suite.Require().NoError(suite.repository.RecordDispatchFailure(ctx, stale))

	got, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(got.IsRead())
	suite.True(got.IsDispatched())
	suite.Zero(got.Dispatch().Attempts)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestFailedNotificationWaitsAndDoesNotBlockOthers() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	failing := suite.addNotification(now.Add(-time.Hour))
	later := suite.addNotification(now.Add(-time.Minute))

	failing.RecordDispatchFailure(now)
	suite.Require().NoError(suite.repository.RecordDispatchFailure(ctx, failing))

	due, err := suite.repository.ListUndispatched(ctx, now, 1)
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.Equal(later.ID(), due[0].ID())

	retry, err := suite.repository.ListUndispatched(ctx, now.Add(time.Minute), 10)
	suite.Require().NoError(err)
	suite.Require().Len(retry, 2)
	suite.Equal(failing.ID(), retry[0].ID())
	suite.Equal(1, retry[0].Dispatch().Attempts)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestParkedNotificationIsNoLongerListed() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	n := suite.addNotification(now)
	for range notification.MaxDispatchAttempts {
		n.RecordDispatchFailure(now)
	}
	suite.Require().NoError(suite.repository.RecordDispatchFailure(ctx, n))

	got, err := suite.repository.ListUndispatched(ctx, now.Add(24*time.Hour), 10)
	suite.Require().NoError(err)
	suite.Empty(got)

	stored, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsParked())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetUnknown() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
