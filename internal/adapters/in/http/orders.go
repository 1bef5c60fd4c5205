package http

import (
	"net/http"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/application/usecases/queries"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreatePatientOrder handles POST /api/v1/patient-orders.
func (s *Server) CreatePatientOrder(c echo.Context) error {
	var req PatientOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	patientID, err := kernel.UUIDFromString(req.PatientID)
	if err != nil {
		return err
	}
	mealType, err := kernel.MealTypeFromString(req.MealType)
	if err != nil {
		return err
	}
	day := kernel.DayOfWeekFromTime(s.now())
	if req.Day != "" {
		if day, err = kernel.DayOfWeekFromString(req.Day); err != nil {
			return err
		}
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePatientOrderCommand(actorFrom(c), id, patientID, mealType, day, req.Instructions)
	if err != nil {
		return err
	}
	res, err := s.h.CreatePatientOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, PatientOrderCreatedResponse{
		ID:       id.String(),
		MenuText: res.MenuText,
		Outcome:  res.Outcome.String(),
	})
}

// ListPatientOrders handles GET /api/v1/patient-orders?status=.
func (s *Server) ListPatientOrders(c echo.Context) error {
	status := order.Unknown
	if raw := c.QueryParam("status"); raw != "" {
		var err error
		if status, err = order.StatusFromString(raw); err != nil {
			return err
		}
	}
	q, err := queries.NewGetPatientOrdersQuery(actorFrom(c), status)
	if err != nil {
		return err
	}
	views, err := s.h.PatientOrders.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := make([]PatientOrderResponse, len(views))
	for i, v := range views {
		resp[i] = PatientOrderResponse{
			ID:                v.ID.String(),
			PatientID:         v.PatientID.String(),
			PatientName:       v.PatientName,
			Room:              v.Room,
			OrderedBy:         v.OrderedBy.String(),
			MealType:          v.MealType.String(),
			Day:               v.Day.String(),
			MenuText:          v.MenuText,
			Instructions:      v.Instructions,
			LifecycleResponse: toLifecycleResponse(v.LifecycleView),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateEmployeeOrder handles POST /api/v1/employee-orders.
func (s *Server) CreateEmployeeOrder(c echo.Context) error {
	var req EmployeeOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	menuID, err := kernel.UUIDFromString(req.MenuID)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateEmployeeOrderCommand(
		actorFrom(c), id, menuID, req.Accompaniments, req.DeliveryLocation, req.Instructions,
	)
	if err != nil {
		return err
	}
	total, err := s.h.CreateEmployeeOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, EmployeeOrderCreatedResponse{ID: id.String(), TotalPrice: total.Amount()})
}

// ListEmployeeOrders handles GET /api/v1/employee-orders?mine=.
func (s *Server) ListEmployeeOrders(c echo.Context) error {
	mine, err := boolParam(c, "mine")
	if err != nil {
		return err
	}
	q, err := queries.NewGetEmployeeOrdersQuery(actorFrom(c), mine)
	if err != nil {
		return err
	}
	views, err := s.h.EmployeeOrders.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := make([]EmployeeOrderResponse, len(views))
	for i, v := range views {
		resp[i] = EmployeeOrderResponse{
			ID:                v.ID.String(),
			EmployeeID:        v.EmployeeID.String(),
			MenuID:            v.MenuID.String(),
			MenuName:          v.MenuName,
			BasePrice:         v.BasePrice.Amount(),
			Accompaniments:    v.Accompaniments,
			TotalPrice:        v.TotalPrice.Amount(),
			DeliveryLocation:  v.DeliveryLocation,
			Instructions:      v.Instructions,
			LifecycleResponse: toLifecycleResponse(v.LifecycleView),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// GetKitchenBoard handles GET /api/v1/kitchen/board.
func (s *Server) GetKitchenBoard(c echo.Context) error {
	q, err := queries.NewGetKitchenBoardQuery(actorFrom(c))
	if err != nil {
		return err
	}
	entries, err := s.h.KitchenBoard.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := make([]BoardEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = BoardEntryResponse{
			Kind:         e.Kind.String(),
			ID:           e.ID.String(),
			Menu:         e.Menu,
			Destination:  e.Destination,
			Instructions: e.Instructions,
			Status:       e.Status.String(),
			CreatedAt:    e.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func orderRef(c echo.Context) (order.Kind, kernel.UUID, error) {
	kind, err := order.KindFromString(c.Param("kind"))
	if err != nil {
		return order.UnknownKind, kernel.UUID{}, err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return order.UnknownKind, kernel.UUID{}, err
	}
	return kind, id, nil
}

// ChangeOrderStatus handles PUT /api/v1/orders/:kind/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	kind, id, err := orderRef(c)
	if err != nil {
		return err
	}
	var req StatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeOrderStatusCommand(actorFrom(c), kind, id, status)
	if err != nil {
		return err
	}
	if err = s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:kind/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	kind, id, err := orderRef(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(actorFrom(c), kind, id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
