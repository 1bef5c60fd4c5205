package commands_test

import (
	"errors"
	"testing"
	"time"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"
	"clinicmeals/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var koumbaDetails = patient.Details{Room: "12B", Service: "Cardiologie", Diet: kernel.DietDiabetic, Allergies: "arachides"}

func newPatient(t *testing.T) *patient.Patient {
	t.Helper()
	p, err := patient.NewPatient(kernel.NewUUID(), "Marie KOUMBA", koumbaDetails, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	return p
}

func TestNewCreatePatientCommand(t *testing.T) {
	_, err := commands.NewCreatePatientCommand(kernel.Actor{}, kernel.UUID{}, " ", koumbaDetails)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewCreatePatientCommand(newActor(t, kernel.Nurse), kernel.NewUUID(), "Marie KOUMBA", koumbaDetails)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Error(t, commands.CreatePatientCommand{}.Validate())
}

func TestCreatePatientCommandHandler_Handle(t *testing.T) {
	t.Run("nurse creates a patient", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreatePatientCommand(newActor(t, kernel.Nurse), kernel.NewUUID(), "Marie KOUMBA", koumbaDetails)
		require.NoError(t, err)

		repo := new(MockPatientRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory[commands.PatientUoW])
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PatientRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.MatchedBy(func(p *patient.Patient) bool {
				return p.ID().IsEqual(cmd.PatientID()) && p.IsActive() && p.Diet() == kernel.DietDiabetic
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreatePatientCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("kitchen is denied before any storage access", func(t *testing.T) {
		cmd, err := commands.NewCreatePatientCommand(newActor(t, kernel.Kitchen), kernel.NewUUID(), "Marie KOUMBA", koumbaDetails)
		require.NoError(t, err)

		factory := new(MockUoWFactory[commands.PatientUoW])
		h := commands.NewCreatePatientCommandHandler(factory)
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("add error aborts", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreatePatientCommand(newActor(t, kernel.Admin), kernel.NewUUID(), "Marie KOUMBA", koumbaDetails)
		require.NoError(t, err)

		repo := new(MockPatientRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory[commands.PatientUoW])
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PatientRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreatePatientCommandHandler(factory)
		require.Error(t, h.Handle(ctx, cmd))
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("begin error", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreatePatientCommand(newActor(t, kernel.Nurse), kernel.NewUUID(), "Marie KOUMBA", koumbaDetails)
		require.NoError(t, err)

		uow := new(MockUoW)
		factory := new(MockUoWFactory[commands.PatientUoW])
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
		)

		h := commands.NewCreatePatientCommandHandler(factory)
		require.Error(t, h.Handle(ctx, cmd))
		uow.AssertExpectations(t)
	})
}

func TestUpdatePatientCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	p := newPatient(t)
	moved := patient.Details{Room: "3A", Service: "Chirurgie", Diet: kernel.DietSaltFree}
	cmd, err := commands.NewUpdatePatientCommand(newActor(t, kernel.Nurse), p.ID(), moved)
	require.NoError(t, err)

	repo := new(MockPatientRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.PatientUoW])
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PatientRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		repo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdatePatientCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "3A", p.Room())
	assert.Equal(t, kernel.DietSaltFree, p.Diet())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdatePatientCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdatePatientCommand(newActor(t, kernel.Nurse), id, koumbaDetails)
	require.NoError(t, err)

	repo := new(MockPatientRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.PatientUoW])
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PatientRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("patient", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewUpdatePatientCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDischargePatientCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	p := newPatient(t)
	at := time.Now().UTC()
	cmd, err := commands.NewDischargePatientCommand(newActor(t, kernel.Nurse), p.ID(), at)
	require.NoError(t, err)

	repo := new(MockPatientRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.PatientUoW])
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PatientRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		repo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDischargePatientCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, p.IsActive())
	require.NotNil(t, p.DischargedAt())
	assert.True(t, p.DischargedAt().Equal(at))
}

func TestNewDischargePatientCommand_DefaultsToNow(t *testing.T) {
	before := time.Now().UTC()
	cmd, err := commands.NewDischargePatientCommand(newActor(t, kernel.Nurse), kernel.NewUUID(), time.Time{})
	require.NoError(t, err)
	assert.False(t, cmd.DischargedAt().Before(before))
}
