package queries

import (
	"context"
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const patientColumns = `id, full_name, room, service, diet, allergies, admitted_at, discharged_at`

const (
	activePatientsSQL = `SELECT ` + patientColumns + `
	FROM patients
	WHERE discharged_at IS NULL
	ORDER BY full_name`
	patientByIDSQL = `SELECT ` + patientColumns + `
	FROM patients
	WHERE id = $1`
)

type GetActivePatientsQueryHandler struct {
	db Querier
}

func NewGetActivePatientsQueryHandler(db Querier) GetActivePatientsQueryHandler {
	return GetActivePatientsQueryHandler{db: db}
}

func (h GetActivePatientsQueryHandler) Handle(ctx context.Context, q GetActivePatientsQuery) ([]PatientView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.Actor().Role().Require(kernel.ManagePatients); err != nil {
		return nil, err
	}

	rows, err := h.db.Query(ctx, activePatientsSQL)
	if err != nil {
		return nil, errs.NewPersistenceError("patients select", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (PatientView, error) {
		return scanPatientView(row)
	})
	if err != nil {
		return nil, errs.NewPersistenceError("patients scan", err)
	}
	return views, nil
}

type GetPatientQueryHandler struct {
	db Querier
}

func NewGetPatientQueryHandler(db Querier) GetPatientQueryHandler {
	return GetPatientQueryHandler{db: db}
}

func (h GetPatientQueryHandler) Handle(ctx context.Context, q GetPatientQuery) (PatientView, error) {
	if err := q.Validate(); err != nil {
		return PatientView{}, err
	}
	if err := q.Actor().Role().Require(kernel.ManagePatients); err != nil {
		return PatientView{}, err
	}

	v, err := scanPatientView(h.db.QueryRow(ctx, patientByIDSQL, q.PatientID().Bytes()))
	if errors.Is(err, pgx.ErrNoRows) {
		return PatientView{}, errs.NewObjectNotFoundError("patient", q.PatientID().String())
	}
	if err != nil {
		return PatientView{}, errs.NewPersistenceError("patient select", err)
	}
	return v, nil
}

func scanPatientView(row pgx.Row) (PatientView, error) {
	var (
		id           uuid.UUID
		v            PatientView
		diet         string
		admittedAt   time.Time
		dischargedAt *time.Time
	)
	if err := row.Scan(&id, &v.FullName, &v.Room, &v.Service, &diet, &v.Allergies, &admittedAt, &dischargedAt); err != nil {
		return PatientView{}, err
	}
	v.AdmittedAt = admittedAt
	v.DischargedAt = dischargedAt

	var err error
	if v.ID, err = toUUID(id); err != nil {
		return PatientView{}, err
	}
	if v.Diet, err = kernel.DietFromString(diet); err != nil {
		return PatientView{}, err
	}
	return v, nil
}
