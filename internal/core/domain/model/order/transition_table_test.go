package order_test

import (
	"testing"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestTransitionTable_Authorize(t *testing.T) {
	patient := order.TableFor(order.PatientOrderKind)
	employee := order.TableFor(order.EmployeeOrderKind)
	kitchen := actor(t, kernel.Kitchen)
	nurse := actor(t, kernel.Nurse)
	staff := actor(t, kernel.Employee)
	owner := kernel.NewUUID()

	t.Run("initial statuses", func(t *testing.T) {
		assert.Equal(t, order.AwaitingApproval, patient.Initial())
		assert.Equal(t, order.Ordered, employee.Initial())
		assert.Nil(t, order.TableFor(order.UnknownKind))
	})

	t.Run("role gated forward edges", func(t *testing.T) {
		cases := []struct {
			table    *order.TransitionTable
			from, to order.Status
			actor    kernel.Actor
			allowed  bool
		}{
			{patient, order.AwaitingApproval, order.Approved, kitchen, true},
			{patient, order.AwaitingApproval, order.Approved, nurse, false},
			{patient, order.Approved, order.Preparing, kitchen, true},
			{employee, order.Ordered, order.Preparing, kitchen, true},
			{employee, order.Ordered, order.Preparing, staff, false},
			{patient, order.Preparing, order.ReadyForDelivery, kitchen, true},
			{patient, order.Preparing, order.ReadyForDelivery, nurse, false},
			{patient, order.ReadyForDelivery, order.Delivered, nurse, true},
			{patient, order.ReadyForDelivery, order.Delivered, kitchen, true},
			{employee, order.ReadyForDelivery, order.Delivered, staff, false},
			{patient, order.AwaitingApproval, order.Cancelled, nurse, true},
			{patient, order.AwaitingApproval, order.Cancelled, kitchen, true},
			{patient, order.AwaitingApproval, order.Cancelled, staff, false},
		}

		for _, tc := range cases {
			err := tc.table.Authorize(tc.from, tc.to, tc.actor, owner)
			if tc.allowed {
				require.NoError(t, err, "%s %s->%s by %s", tc.table.Kind(), tc.from, tc.to, tc.actor.Role())
				continue
			}
			require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
			require.ErrorIs(t, err, errs.ErrPermissionDenied)
		}
	})

	t.Run("employee cannot start preparation", func(t *testing.T) {
		err := employee.Authorize(order.Ordered, order.Preparing, staff, staff.ID())

		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
		var denied *errs.PermissionDeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, "Employé", denied.Role)
		assert.Equal(t, "StartPreparation", denied.Permission)
	})

	t.Run("skipped and backward edges are unreachable", func(t *testing.T) {
		for _, e := range [][2]order.Status{
			{order.Preparing, order.Delivered},
			{order.AwaitingApproval, order.Preparing},
			{order.ReadyForDelivery, order.Preparing},
			{order.Approved, order.Cancelled},
			{order.Preparing, order.Cancelled},
			{order.Delivered, order.Cancelled},
			{order.Cancelled, order.AwaitingApproval},
		} {
			err := patient.Authorize(e[0], e[1], kitchen, owner)

			require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed, "%s->%s", e[0], e[1])
			assert.NotErrorIs(t, err, errs.ErrPermissionDenied)
		}
	})

	t.Run("statuses of the other kind are unreachable", func(t *testing.T) {
		require.ErrorIs(t, employee.Authorize(order.AwaitingApproval, order.Approved, kitchen, owner), errs.ErrTransitionIsNotAllowed)
		require.ErrorIs(t, patient.Authorize(order.Ordered, order.Preparing, kitchen, owner), errs.ErrTransitionIsNotAllowed)
		assert.False(t, patient.Knows(order.Ordered))
		assert.False(t, employee.Knows(order.Approved))
		assert.True(t, employee.Knows(order.Cancelled))
	})

	t.Run("employee order cancel is owner only for non kitchen roles", func(t *testing.T) {
		require.NoError(t, employee.Authorize(order.Ordered, order.Cancelled, staff, staff.ID()))
		require.NoError(t, employee.Authorize(order.Ordered, order.Cancelled, kitchen, staff.ID()))

		err := employee.Authorize(order.Ordered, order.Cancelled, staff, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("targets", func(t *testing.T) {
		assert.ElementsMatch(t, []order.Status{order.Approved, order.Cancelled}, patient.Targets(order.AwaitingApproval))
		assert.Empty(t, patient.Targets(order.Delivered))
	})
}
