// Package http exposes the use cases over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/application/usecases/queries"
	"clinicmeals/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CommandHandler is a use case that returns nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is a use case that returns a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// TokenVerifier turns a bearer token into the actor it was issued for.
type TokenVerifier interface {
	Verify(token string) (kernel.Actor, error)
}

// Handlers lists the use cases the API serves.
type Handlers struct {
	Login         ResultHandler[queries.LoginQuery, queries.Session]
	CreateAccount CommandHandler[commands.CreateAccountCommand]

	ActivePatients   ResultHandler[queries.GetActivePatientsQuery, []queries.PatientView]
	Patient          ResultHandler[queries.GetPatientQuery, queries.PatientView]
	CreatePatient    CommandHandler[commands.CreatePatientCommand]
	UpdatePatient    CommandHandler[commands.UpdatePatientCommand]
	DischargePatient CommandHandler[commands.DischargePatientCommand]

	WeeklyMenu              ResultHandler[queries.GetWeeklyMenuQuery, []queries.WeeklyMenuItemView]
	AddWeeklyMenuItem       CommandHandler[commands.AddWeeklyMenuItemCommand]
	SetWeeklyItemAvailable  CommandHandler[commands.SetWeeklyMenuItemAvailabilityCommand]
	EmployeeMenus           ResultHandler[queries.GetEmployeeMenusQuery, []queries.EmployeeMenuView]
	EmployeeMenuPhoto       ResultHandler[queries.GetEmployeeMenuPhotoQuery, queries.PhotoView]
	AddEmployeeMenu         CommandHandler[commands.AddEmployeeMenuCommand]
	UpdateEmployeeMenu      CommandHandler[commands.UpdateEmployeeMenuCommand]
	AttachEmployeeMenuPhoto CommandHandler[commands.AttachEmployeeMenuPhotoCommand]

	CreatePatientOrder  ResultHandler[commands.CreatePatientOrderCommand, commands.CreatePatientOrderResult]
	PatientOrders       ResultHandler[queries.GetPatientOrdersQuery, []queries.PatientOrderView]
	CreateEmployeeOrder ResultHandler[commands.CreateEmployeeOrderCommand, kernel.Price]
	EmployeeOrders      ResultHandler[queries.GetEmployeeOrdersQuery, []queries.EmployeeOrderView]
	KitchenBoard        ResultHandler[queries.GetKitchenBoardQuery, []queries.BoardEntry]
	ChangeOrderStatus   CommandHandler[commands.ChangeOrderStatusCommand]
	DeleteOrder         CommandHandler[commands.DeleteOrderCommand]

	Notifications        ResultHandler[queries.GetNotificationsQuery, []queries.NotificationView]
	MarkNotificationRead CommandHandler[commands.MarkNotificationReadCommand]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h        Handlers
	verifier TokenVerifier
	logger   *slog.Logger
	clock    func() time.Time
	location *time.Location
}

type ServerOption func(*Server)

// WithLocation sets the clinic time zone used to decide what "today" is.
func WithLocation(loc *time.Location) ServerOption {
	return func(s *Server) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithClock(clock func() time.Time) ServerOption {
	return func(s *Server) { s.clock = clock }
}

func NewServer(h Handlers, verifier TokenVerifier, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		h:        h,
		verifier: verifier,
		logger:   logger.With("component", "http"),
		clock:    time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// now is the current time in the clinic time zone.
func (s *Server) now() time.Time {
	return s.clock().In(s.location)
}

// NewEcho builds the echo instance with middleware and every route.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler
	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/sessions", s.Login)
	api.GET("/catalog/employee/:id/photo", s.GetEmployeeMenuPhoto)

	authed := api.Group("", s.authenticate)
	authed.POST("/accounts", s.CreateAccount)

	authed.GET("/patients", s.ListPatients)
	authed.POST("/patients", s.CreatePatient)
	authed.GET("/patients/:id", s.GetPatient)
	authed.PUT("/patients/:id", s.UpdatePatient)
	authed.POST("/patients/:id/discharge", s.DischargePatient)

	authed.GET("/catalog/weekly", s.ListWeeklyMenu)
	authed.POST("/catalog/weekly", s.AddWeeklyMenuItem)
	authed.PUT("/catalog/weekly/:id/availability", s.SetWeeklyMenuItemAvailability)
	authed.GET("/catalog/employee", s.ListEmployeeMenus)
	authed.POST("/catalog/employee", s.AddEmployeeMenu)
	authed.PUT("/catalog/employee/:id", s.UpdateEmployeeMenu)
	authed.PUT("/catalog/employee/:id/photo", s.AttachEmployeeMenuPhoto)

	authed.POST("/patient-orders", s.CreatePatientOrder)
	authed.GET("/patient-orders", s.ListPatientOrders)
	authed.POST("/employee-orders", s.CreateEmployeeOrder)
	authed.GET("/employee-orders", s.ListEmployeeOrders)
	authed.GET("/kitchen/board", s.GetKitchenBoard)
	authed.PUT("/orders/:kind/:id/status", s.ChangeOrderStatus)
	authed.DELETE("/orders/:kind/:id", s.DeleteOrder)

	authed.GET("/notifications", s.ListNotifications)
	authed.POST("/notifications/:id/read", s.MarkNotificationRead)

	return e
}
