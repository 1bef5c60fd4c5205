package queries

import (
	"context"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const employeeOrdersSelect = `
	SELECT id, employee_id, menu_id, menu_name, base_price, accompaniments, total_price,
	       delivery_location, instructions, status, created_at, prepared_at, delivered_at
	FROM employee_orders`

const (
	allEmployeeOrdersSQL = employeeOrdersSelect + `
	ORDER BY created_at DESC`
	ownEmployeeOrdersSQL = employeeOrdersSelect + `
	WHERE employee_id = $1
	ORDER BY created_at DESC`
)

type GetEmployeeOrdersQueryHandler struct {
	db Querier
}

func NewGetEmployeeOrdersQueryHandler(db Querier) GetEmployeeOrdersQueryHandler {
	return GetEmployeeOrdersQueryHandler{db: db}
}

func (h GetEmployeeOrdersQueryHandler) Handle(ctx context.Context, q GetEmployeeOrdersQuery) ([]EmployeeOrderView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var (
		rows pgx.Rows
		err  error
	)
	if q.Mine() {
		rows, err = h.db.Query(ctx, ownEmployeeOrdersSQL, q.Actor().ID().Bytes())
	} else {
		if err = q.Actor().Role().Require(kernel.ViewAllEmployeeOrders); err != nil {
			return nil, err
		}
		rows, err = h.db.Query(ctx, allEmployeeOrdersSQL)
	}
	if err != nil {
		return nil, errs.NewPersistenceError("employee orders select", err)
	}

	views, err := pgx.CollectRows(rows, scanEmployeeOrderView)
	if err != nil {
		return nil, errs.NewPersistenceError("employee orders scan", err)
	}
	return views, nil
}

func scanEmployeeOrderView(row pgx.CollectableRow) (EmployeeOrderView, error) {
	var (
		id, employeeID, menuID  uuid.UUID
		menuName, location      string
		instructions, status    string
		base, total             decimal.Decimal
		accompaniments          int
		createdAt               time.Time
		preparedAt, deliveredAt *time.Time
	)
	if err := row.Scan(&id, &employeeID, &menuID, &menuName, &base, &accompaniments, &total,
		&location, &instructions, &status, &createdAt, &preparedAt, &deliveredAt); err != nil {
		return EmployeeOrderView{}, err
	}

	v := EmployeeOrderView{
		MenuName:         menuName,
		Accompaniments:   accompaniments,
		DeliveryLocation: location,
		Instructions:     instructions,
	}
	var err error
	if v.ID, err = toUUID(id); err != nil {
		return EmployeeOrderView{}, err
	}
	if v.EmployeeID, err = toUUID(employeeID); err != nil {
		return EmployeeOrderView{}, err
	}
	if v.MenuID, err = toUUID(menuID); err != nil {
		return EmployeeOrderView{}, err
	}
	if v.BasePrice, err = kernel.NewPrice(base); err != nil {
		return EmployeeOrderView{}, err
	}
	if v.TotalPrice, err = kernel.NewPrice(total); err != nil {
		return EmployeeOrderView{}, err
	}
	if v.LifecycleView, err = lifecycleView(status, createdAt, preparedAt, deliveredAt); err != nil {
		return EmployeeOrderView{}, err
	}
	return v, nil
}
