package queries

import (
	"context"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const patientOrdersSQL = `
	SELECT o.id, o.patient_id, p.full_name, p.room, o.ordered_by, o.meal_type, o.day,
	       o.menu_text, o.instructions, o.status, o.created_at, o.prepared_at, o.delivered_at
	FROM patient_orders o
	JOIN patients p ON p.id = o.patient_id
	WHERE ($1::text = '' OR o.status = $1)
	ORDER BY o.created_at DESC`

type GetPatientOrdersQueryHandler struct {
	db Querier
}

func NewGetPatientOrdersQueryHandler(db Querier) GetPatientOrdersQueryHandler {
	return GetPatientOrdersQueryHandler{db: db}
}

func (h GetPatientOrdersQueryHandler) Handle(ctx context.Context, q GetPatientOrdersQuery) ([]PatientOrderView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.Actor().Role().Require(kernel.ViewPatientOrders); err != nil {
		return nil, err
	}

	status := ""
	if q.Status() != order.Unknown {
		status = q.Status().String()
	}

	rows, err := h.db.Query(ctx, patientOrdersSQL, status)
	if err != nil {
		return nil, errs.NewPersistenceError("patient orders select", err)
	}
	views, err := pgx.CollectRows(rows, scanPatientOrderView)
	if err != nil {
		return nil, errs.NewPersistenceError("patient orders scan", err)
	}
	return views, nil
}

func scanPatientOrderView(row pgx.CollectableRow) (PatientOrderView, error) {
	var (
		id, patientID, orderedBy               uuid.UUID
		name, room, mealType, day, menu, instr string
		status                                 string
		createdAt                              time.Time
		preparedAt, deliveredAt                *time.Time
	)
	if err := row.Scan(&id, &patientID, &name, &room, &orderedBy, &mealType, &day,
		&menu, &instr, &status, &createdAt, &preparedAt, &deliveredAt); err != nil {
		return PatientOrderView{}, err
	}

	v := PatientOrderView{PatientName: name, Room: room, MenuText: menu, Instructions: instr}
	var err error
	if v.ID, err = toUUID(id); err != nil {
		return PatientOrderView{}, err
	}
	if v.PatientID, err = toUUID(patientID); err != nil {
		return PatientOrderView{}, err
	}
	if v.OrderedBy, err = toUUID(orderedBy); err != nil {
		return PatientOrderView{}, err
	}
	if v.MealType, err = kernel.MealTypeFromString(mealType); err != nil {
		return PatientOrderView{}, err
	}
	if v.Day, err = kernel.DayOfWeekFromString(day); err != nil {
		return PatientOrderView{}, err
	}
	if v.LifecycleView, err = lifecycleView(status, createdAt, preparedAt, deliveredAt); err != nil {
		return PatientOrderView{}, err
	}
	return v, nil
}
