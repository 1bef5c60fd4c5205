package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/domain/model/account"
	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/notification"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/core/domain/model/patient"
	"clinicmeals/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUoW implements every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) PatientRepository() ports.PatientRepository {
	return m.Called().Get(0).(ports.PatientRepository)
}

func (m *MockUoW) PatientOrderRepository() ports.PatientOrderRepository {
	return m.Called().Get(0).(ports.PatientOrderRepository)
}

func (m *MockUoW) EmployeeOrderRepository() ports.EmployeeOrderRepository {
	return m.Called().Get(0).(ports.EmployeeOrderRepository)
}

func (m *MockUoW) WeeklyMenuRepository() ports.WeeklyMenuRepository {
	return m.Called().Get(0).(ports.WeeklyMenuRepository)
}

func (m *MockUoW) EmployeeMenuRepository() ports.EmployeeMenuRepository {
	return m.Called().Get(0).(ports.EmployeeMenuRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	return m.Called().Get(0).(ports.AccountRepository)
}

type MockUoWFactory[T commands.TxManager] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

type MockPatientRepository struct{ mock.Mock }

func (m *MockPatientRepository) Add(ctx context.Context, p *patient.Patient) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*patient.Patient)
	return p, args.Error(1)
}

type MockPatientOrderRepository struct{ mock.Mock }

func (m *MockPatientOrderRepository) Add(ctx context.Context, o *order.PatientOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockPatientOrderRepository) Update(ctx context.Context, o *order.PatientOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockPatientOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.PatientOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.PatientOrder)
	return o, args.Error(1)
}

func (m *MockPatientOrderRepository) Delete(ctx context.Context, o *order.PatientOrder) error {
	return m.Called(ctx, o).Error(0)
}

type MockEmployeeOrderRepository struct{ mock.Mock }

func (m *MockEmployeeOrderRepository) Add(ctx context.Context, o *order.EmployeeOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockEmployeeOrderRepository) Update(ctx context.Context, o *order.EmployeeOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockEmployeeOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.EmployeeOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.EmployeeOrder)
	return o, args.Error(1)
}

func (m *MockEmployeeOrderRepository) Delete(ctx context.Context, o *order.EmployeeOrder) error {
	return m.Called(ctx, o).Error(0)
}

type MockWeeklyMenuRepository struct{ mock.Mock }

func (m *MockWeeklyMenuRepository) Add(ctx context.Context, item *catalog.WeeklyMenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockWeeklyMenuRepository) Update(ctx context.Context, item *catalog.WeeklyMenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockWeeklyMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.WeeklyMenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*catalog.WeeklyMenuItem)
	return item, args.Error(1)
}

func (m *MockWeeklyMenuRepository) ListAll(ctx context.Context) ([]*catalog.WeeklyMenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*catalog.WeeklyMenuItem)
	return items, args.Error(1)
}

type MockEmployeeMenuRepository struct{ mock.Mock }

func (m *MockEmployeeMenuRepository) Add(ctx context.Context, menu *catalog.EmployeeMenu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MockEmployeeMenuRepository) Update(ctx context.Context, menu *catalog.EmployeeMenu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MockEmployeeMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.EmployeeMenu, error) {
	args := m.Called(ctx, id)
	menu, _ := args.Get(0).(*catalog.EmployeeMenu)
	return menu, args.Error(1)
}

func (m *MockEmployeeMenuRepository) ListAll(ctx context.Context) ([]*catalog.EmployeeMenu, error) {
	args := m.Called(ctx)
	menus, _ := args.Get(0).([]*catalog.EmployeeMenu)
	return menus, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) MarkDispatched(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) RecordDispatchFailure(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) ListUndispatched(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, now, limit)
	list, _ := args.Get(0).([]*notification.Notification)
	return list, args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetByLogin(ctx context.Context, login string) (*account.Account, error) {
	args := m.Called(ctx, login)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

type MockNotificationEmitter struct{ mock.Mock }

func (m *MockNotificationEmitter) Emit(o order.Order, now time.Time) (*notification.Notification, error) {
	args := m.Called(o, now)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, msg ports.NotificationMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockPublisher) Close() error { return m.Called().Error(0) }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}
