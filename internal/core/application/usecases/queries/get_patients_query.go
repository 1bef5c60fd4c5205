package queries

import (
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var (
	ErrGetActivePatientsQueryIsNotConstructed = errors.New(
		"GetActivePatientsQuery must be created via NewGetActivePatientsQuery constructor",
	)
	ErrGetPatientQueryIsNotConstructed = errors.New(
		"GetPatientQuery must be created via NewGetPatientQuery constructor",
	)
)

// GetActivePatientsQuery lists patients not yet discharged, by name.
type GetActivePatientsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetActivePatientsQuery(actor kernel.Actor) (GetActivePatientsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActivePatientsQuery{}, err
	}
	return GetActivePatientsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActivePatientsQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePatientsQueryIsNotConstructed)
}

func (q GetActivePatientsQuery) Actor() kernel.Actor { return q.actor }

// GetPatientQuery loads one patient, discharged or not.
type GetPatientQuery struct {
	actor     kernel.Actor
	patientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPatientQuery(actor kernel.Actor, patientID kernel.UUID) (GetPatientQuery, error) {
	if err := errors.Join(actor.Validate(), patientID.Validate()); err != nil {
		return GetPatientQuery{}, err
	}
	return GetPatientQuery{actor: actor, patientID: patientID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPatientQuery) Validate() error {
	return q.guard.Validate(ErrGetPatientQueryIsNotConstructed)
}

func (q GetPatientQuery) Actor() kernel.Actor    { return q.actor }
func (q GetPatientQuery) PatientID() kernel.UUID { return q.patientID }

type PatientView struct {
	ID           kernel.UUID
	FullName     string
	Room         string
	Service      string
	Diet         kernel.Diet
	Allergies    string
	AdmittedAt   time.Time
	DischargedAt *time.Time
}
