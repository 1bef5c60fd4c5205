package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicmeals/internal/core/application/usecases/queries"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"

	"github.com/google/uuid"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmockv3.PgxPoolIface {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

var patientOrderColumns = []string{
	"id", "patient_id", "full_name", "room", "ordered_by", "meal_type", "day",
	"menu_text", "instructions", "status", "created_at", "prepared_at", "delivered_at",
}

func TestGetPatientOrdersQuery(t *testing.T) {
	t.Run("filters by status and maps the rows", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetPatientOrdersQueryHandler(mock)
		now := time.Now()
		id, patientID, nurseID := uuid.New(), uuid.New(), uuid.New()

		mock.ExpectQuery("FROM patient_orders o").
			WithArgs("ReadyForDelivery").
			WillReturnRows(pgxmockv3.NewRows(patientOrderColumns).
				AddRow(id, patientID, "Marie KOUMBA", "12B", nurseID, "Déjeuner", "Lundi",
					"Poisson vapeur - légumes verts", "", "ReadyForDelivery", now, &now, nil))

		q, err := queries.NewGetPatientOrdersQuery(newActor(t, kernel.Kitchen), order.ReadyForDelivery)
		require.NoError(t, err)
		views, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, id.String(), views[0].ID.String())
		assert.Equal(t, "Marie KOUMBA", views[0].PatientName)
		assert.Equal(t, kernel.Lunch, views[0].MealType)
		assert.Equal(t, kernel.Monday, views[0].Day)
		assert.Equal(t, order.ReadyForDelivery, views[0].Status)
		require.NotNil(t, views[0].PreparedAt)
		assert.Nil(t, views[0].DeliveredAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown status means every status", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetPatientOrdersQueryHandler(mock)
		mock.ExpectQuery("FROM patient_orders o").
			WithArgs("").
			WillReturnRows(pgxmockv3.NewRows(patientOrderColumns))

		q, err := queries.NewGetPatientOrdersQuery(newActor(t, kernel.Nurse), order.Unknown)
		require.NoError(t, err)
		views, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		assert.Empty(t, views)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("employee order status is rejected", func(t *testing.T) {
		_, err := queries.NewGetPatientOrdersQuery(newActor(t, kernel.Nurse), order.Ordered)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("employee may not list patient orders", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetPatientOrdersQueryHandler(mock)

		q, err := queries.NewGetPatientOrdersQuery(newActor(t, kernel.Employee), order.Unknown)
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), q)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database failure is a persistence error", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetPatientOrdersQueryHandler(mock)
		mock.ExpectQuery("FROM patient_orders o").WithArgs("").WillReturnError(errors.New("connection reset"))

		q, err := queries.NewGetPatientOrdersQuery(newActor(t, kernel.Admin), order.Unknown)
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), q)

		require.ErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("zero value query is rejected", func(t *testing.T) {
		handler := queries.NewGetPatientOrdersQueryHandler(newMockPool(t))
		_, err := handler.Handle(context.Background(), queries.GetPatientOrdersQuery{})
		require.ErrorIs(t, err, queries.ErrGetPatientOrdersQueryIsNotConstructed)
	})
}

var employeeOrderColumns = []string{
	"id", "employee_id", "menu_id", "menu_name", "base_price", "accompaniments", "total_price",
	"delivery_location", "instructions", "status", "created_at", "prepared_at", "delivered_at",
}

func TestGetEmployeeOrdersQuery(t *testing.T) {
	t.Run("mine filters on the actor", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetEmployeeOrdersQueryHandler(mock)
		actor := newActor(t, kernel.Employee)
		now := time.Now()

		mock.ExpectQuery("WHERE employee_id =").
			WithArgs(actor.ID().Bytes()).
			WillReturnRows(pgxmockv3.NewRows(employeeOrderColumns).
				AddRow(uuid.New(), actor.ID().Bytes(), uuid.New(), "Poulet yassa",
					decimal.NewFromInt(1500), 2, decimal.NewFromInt(2000),
					"Accueil", "sans piment", "Ordered", now, nil, nil))

		q, err := queries.NewGetEmployeeOrdersQuery(actor, true)
		require.NoError(t, err)
		views, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, actor.ID(), views[0].EmployeeID)
		assert.True(t, views[0].TotalPrice.IsEqual(kernel.MustPrice(2000)))
		assert.Equal(t, 2, views[0].Accompaniments)
		assert.Equal(t, order.Ordered, views[0].Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all requires the permission", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetEmployeeOrdersQueryHandler(mock)

		q, err := queries.NewGetEmployeeOrdersQuery(newActor(t, kernel.Employee), false)
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), q)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("kitchen sees all", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetEmployeeOrdersQueryHandler(mock)
		mock.ExpectQuery("FROM employee_orders").
			WillReturnRows(pgxmockv3.NewRows(employeeOrderColumns))

		q, err := queries.NewGetEmployeeOrdersQuery(newActor(t, kernel.Kitchen), false)
		require.NoError(t, err)
		views, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		assert.Empty(t, views)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetKitchenBoardQuery(t *testing.T) {
	t.Run("merges both kinds and skips terminal statuses", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetKitchenBoardQueryHandler(mock)
		now := time.Now()

		mock.ExpectQuery("UNION ALL").
			WithArgs([]string{"Delivered", "Cancelled"}).
			WillReturnRows(pgxmockv3.NewRows([]string{"kind", "id", "menu", "destination", "instructions", "status", "created_at"}).
				AddRow("PatientOrder", uuid.New(), "Soupe", "Marie KOUMBA - 12B", "", "Approved", now.Add(-time.Minute)).
				AddRow("EmployeeOrder", uuid.New(), "Poulet yassa", "Accueil", "", "Preparing", now))

		q, err := queries.NewGetKitchenBoardQuery(newActor(t, kernel.Kitchen))
		require.NoError(t, err)
		board, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		require.Len(t, board, 2)
		assert.Equal(t, order.PatientOrderKind, board[0].Kind)
		assert.Equal(t, "Marie KOUMBA - 12B", board[0].Destination)
		assert.Equal(t, order.EmployeeOrderKind, board[1].Kind)
		assert.Equal(t, order.Preparing, board[1].Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nurse has no board", func(t *testing.T) {
		handler := queries.NewGetKitchenBoardQueryHandler(newMockPool(t))
		q, err := queries.NewGetKitchenBoardQuery(newActor(t, kernel.Nurse))
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), q)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestGetNotificationsQuery(t *testing.T) {
	mock := newMockPool(t)
	handler := queries.NewGetNotificationsQueryHandler(mock)
	actor := newActor(t, kernel.Nurse)
	id, orderID := uuid.New(), uuid.New()

	mock.ExpectQuery("FROM notifications").
		WithArgs(actor.ID().Bytes(), true, queries.NotificationsPageSize).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "order_id", "message", "read", "created_at"}).
			AddRow(id, orderID, "Votre commande « Soupe » a été livrée.", false, time.Now()))

	q, err := queries.NewGetNotificationsQuery(actor, true)
	require.NoError(t, err)
	views, err := handler.Handle(context.Background(), q)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, orderID.String(), views[0].OrderID.String())
	assert.False(t, views[0].Read)
	require.NoError(t, mock.ExpectationsWereMet())
}

var patientColumns = []string{"id", "full_name", "room", "service", "diet", "allergies", "admitted_at", "discharged_at"}

func TestGetPatientsQueries(t *testing.T) {
	t.Run("active patients", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetActivePatientsQueryHandler(mock)
		mock.ExpectQuery("WHERE discharged_at IS NULL").
			WillReturnRows(pgxmockv3.NewRows(patientColumns).
				AddRow(uuid.New(), "Marie KOUMBA", "12B", "Cardiologie", "Sans sel", "", time.Now(), nil))

		q, err := queries.NewGetActivePatientsQuery(newActor(t, kernel.Nurse))
		require.NoError(t, err)
		views, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, kernel.DietSaltFree, views[0].Diet)
		assert.Nil(t, views[0].DischargedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("kitchen cannot list patients", func(t *testing.T) {
		handler := queries.NewGetActivePatientsQueryHandler(newMockPool(t))
		q, err := queries.NewGetActivePatientsQuery(newActor(t, kernel.Kitchen))
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), q)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("unknown patient", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetPatientQueryHandler(mock)
		id := kernel.NewUUID()
		mock.ExpectQuery("FROM patients").
			WithArgs(id.Bytes()).
			WillReturnRows(pgxmockv3.NewRows(patientColumns))

		q, err := queries.NewGetPatientQuery(newActor(t, kernel.Admin), id)
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetCatalogQueries(t *testing.T) {
	t.Run("weekly menu", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetWeeklyMenuQueryHandler(mock)
		mock.ExpectQuery("FROM weekly_menu_items").
			WithArgs(true).
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "day", "diet", "meal_type", "dish_name", "description", "available", "created_at"}).
				AddRow(uuid.New(), "Mardi", "Mixé", "Dîner", "Purée de carottes", "", true, time.Now()))

		q, err := queries.NewGetWeeklyMenuQuery(newActor(t, kernel.Employee), true)
		require.NoError(t, err)
		views, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, kernel.Tuesday, views[0].Day)
		assert.Equal(t, kernel.DietBlended, views[0].Diet)
		assert.Equal(t, kernel.Dinner, views[0].MealType)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("employee menus", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetEmployeeMenusQueryHandler(mock)
		mock.ExpectQuery("FROM employee_menus").
			WithArgs(false).
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "description", "base_price", "available", "has_photo", "created_at"}).
				AddRow(uuid.New(), "Poulet yassa", "", decimal.RequireFromString("1500.00"), false, true, time.Now()))

		q, err := queries.NewGetEmployeeMenusQuery(newActor(t, kernel.Kitchen), false)
		require.NoError(t, err)
		views, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.True(t, views[0].BasePrice.IsEqual(kernel.MustPrice(1500)))
		assert.True(t, views[0].HasPhoto)
		assert.False(t, views[0].Available)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("photo", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetEmployeeMenuPhotoQueryHandler(mock)
		id := kernel.NewUUID()
		mock.ExpectQuery("SELECT photo_content_type, photo").
			WithArgs(id.Bytes()).
			WillReturnRows(pgxmockv3.NewRows([]string{"photo_content_type", "photo"}).
				AddRow("image/png", []byte{0x89, 0x50}))

		q, err := queries.NewGetEmployeeMenuPhotoQuery(id)
		require.NoError(t, err)
		photo, err := handler.Handle(context.Background(), q)

		require.NoError(t, err)
		assert.Equal(t, "image/png", photo.ContentType)
		assert.Equal(t, []byte{0x89, 0x50}, photo.Data)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing photo", func(t *testing.T) {
		mock := newMockPool(t)
		handler := queries.NewGetEmployeeMenuPhotoQueryHandler(mock)
		id := kernel.NewUUID()
		mock.ExpectQuery("SELECT photo_content_type, photo").
			WithArgs(id.Bytes()).
			WillReturnRows(pgxmockv3.NewRows([]string{"photo_content_type", "photo"}))

		q, err := queries.NewGetEmployeeMenuPhotoQuery(id)
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
