package errs_test

import (
	"errors"
	"testing"

	"clinicmeals/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("patient", "123")

		assert.Equal(t, "patient", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: patient 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("patient", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: patient 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: order 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("diet")

		assert.Equal(t, "diet", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: diet", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown label")
		err := errs.NewValueIsInvalidErrorWithCause("diet", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: diet (cause: unknown label)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("accompaniments", 3, 1, 2)

		assert.Equal(t, "accompaniments", err.ParamName)
		assert.Equal(t, 3, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 2, err.Max)
		assert.Equal(t, "value is out of range: 3 is accompaniments, min value is 1, max value is 2", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is out of range: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("room")

	assert.Equal(t, "value is required: room", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("room", errors.New("blank"))
	assert.Equal(t, "value is required: room (cause: blank)", withCause.Error())
}

func TestTransitionIsNotAllowedError(t *testing.T) {
	t.Run("unreachable status", func(t *testing.T) {
		err := errs.NewTransitionIsNotAllowedError("PatientOrder", "Preparing", "Delivered")

		assert.Equal(t, "transition is not allowed: PatientOrder Preparing -> Delivered", err.Error())
		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
		assert.NotErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("permission denied cause matches both sentinels", func(t *testing.T) {
		cause := errs.NewPermissionDeniedError("Employé", "StartPreparation")
		err := errs.NewTransitionIsNotAllowedErrorWithCause("EmployeeOrder", "Ordered", "Preparing", cause)

		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Contains(t, err.Error(), "role Employé lacks StartPreparation")

		var denied *errs.PermissionDeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, "Employé", denied.Role)
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewPersistenceError("patient order update", cause)

	assert.Equal(t, "persistence failed: patient order update (cause: connection reset)", err.Error())
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, cause)
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("employee order", "42")

	assert.Equal(t, "concurrent modification: employee order 42 was changed by another request", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
}

func TestNotificationError(t *testing.T) {
	cause := errors.New("broker unavailable")
	err := errs.NewNotificationError("abc", cause)

	require.ErrorIs(t, err, errs.ErrNotificationIsNotIssued)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "notification is not issued: recipient abc (cause: broker unavailable)", err.Error())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "transition is not allowed", errs.ErrTransitionIsNotAllowed.Error())
	assert.Equal(t, "permission denied", errs.ErrPermissionDenied.Error())
}
