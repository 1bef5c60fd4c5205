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

const kitchenBoardSQL = `
	SELECT 'PatientOrder' AS kind, o.id, o.menu_text, p.full_name || ' - ' || p.room,
	       o.instructions, o.status, o.created_at
	FROM patient_orders o
	JOIN patients p ON p.id = o.patient_id
	WHERE o.status <> ALL($1)
	UNION ALL
	SELECT 'EmployeeOrder', id, menu_name, delivery_location, instructions, status, created_at
	FROM employee_orders
	WHERE status <> ALL($1)
	ORDER BY created_at`

type GetKitchenBoardQueryHandler struct {
	db Querier
}

func NewGetKitchenBoardQueryHandler(db Querier) GetKitchenBoardQueryHandler {
	return GetKitchenBoardQueryHandler{db: db}
}

func (h GetKitchenBoardQueryHandler) Handle(ctx context.Context, q GetKitchenBoardQuery) ([]BoardEntry, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.Actor().Role().Require(kernel.ViewKitchenBoard); err != nil {
		return nil, err
	}

	rows, err := h.db.Query(ctx, kitchenBoardSQL, terminalStatuses())
	if err != nil {
		return nil, errs.NewPersistenceError("kitchen board select", err)
	}
	entries, err := pgx.CollectRows(rows, scanBoardEntry)
	if err != nil {
		return nil, errs.NewPersistenceError("kitchen board scan", err)
	}
	return entries, nil
}

func terminalStatuses() []string {
	return []string{order.Delivered.String(), order.Cancelled.String()}
}

func scanBoardEntry(row pgx.CollectableRow) (BoardEntry, error) {
	var (
		kind, menu, destination string
		instructions, status    string
		id                      uuid.UUID
		createdAt               time.Time
	)
	if err := row.Scan(&kind, &id, &menu, &destination, &instructions, &status, &createdAt); err != nil {
		return BoardEntry{}, err
	}

	e := BoardEntry{Menu: menu, Destination: destination, Instructions: instructions, CreatedAt: createdAt}
	var err error
	if e.Kind, err = order.KindFromString(kind); err != nil {
		return BoardEntry{}, err
	}
	if e.ID, err = toUUID(id); err != nil {
		return BoardEntry{}, err
	}
	if e.Status, err = order.StatusFromString(status); err != nil {
		return BoardEntry{}, err
	}
	return e, nil
}
