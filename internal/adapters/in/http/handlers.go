package http

import (
	"net/http"
	"strconv"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/application/usecases/queries"
	"clinicmeals/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}

func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return badRequest("invalid request body")
	}
	return nil
}

// boolParam reads an optional boolean query parameter.
func boolParam(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest(name + " must be a boolean")
	}
	return v, nil
}

// Login handles POST /api/v1/sessions.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	q, err := queries.NewLoginQuery(req.Login, req.Password)
	if err != nil {
		return err
	}
	session, err := s.h.Login.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SessionResponse{
		Token:       session.Token,
		ExpiresAt:   session.ExpiresAt,
		AccountID:   session.AccountID.String(),
		Role:        session.Role.String(),
		DisplayName: session.DisplayName,
	})
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(c echo.Context) error {
	var req NewAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	role, err := kernel.RoleFromString(req.Role)
	if err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(actorFrom(c), id, req.Login, req.DisplayName, req.Password, role)
	if err != nil {
		return err
	}
	if err = s.h.CreateAccount.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListNotifications handles GET /api/v1/notifications?unread=.
func (s *Server) ListNotifications(c echo.Context) error {
	unread, err := boolParam(c, "unread")
	if err != nil {
		return err
	}
	q, err := queries.NewGetNotificationsQuery(actorFrom(c), unread)
	if err != nil {
		return err
	}
	views, err := s.h.Notifications.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := make([]NotificationResponse, len(views))
	for i, v := range views {
		resp[i] = NotificationResponse{
			ID:        v.ID.String(),
			OrderID:   v.OrderID.String(),
			Message:   v.Message,
			Read:      v.Read,
			CreatedAt: v.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkNotificationReadCommand(actorFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.h.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
