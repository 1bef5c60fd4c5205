package http

import (
	"net/http"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/application/usecases/queries"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"

	"github.com/labstack/echo/v4"
)

func (r PatientRequest) details() (patient.Details, error) {
	diet, err := kernel.DietFromString(r.Diet)
	if err != nil {
		return patient.Details{}, err
	}
	return patient.Details{Room: r.Room, Service: r.Service, Diet: diet, Allergies: r.Allergies}, nil
}

// ListPatients handles GET /api/v1/patients.
func (s *Server) ListPatients(c echo.Context) error {
	q, err := queries.NewGetActivePatientsQuery(actorFrom(c))
	if err != nil {
		return err
	}
	views, err := s.h.ActivePatients.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := make([]PatientResponse, len(views))
	for i, v := range views {
		resp[i] = toPatientResponse(v)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetPatient handles GET /api/v1/patients/:id.
func (s *Server) GetPatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	q, err := queries.NewGetPatientQuery(actorFrom(c), id)
	if err != nil {
		return err
	}
	v, err := s.h.Patient.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientResponse(v))
}

// CreatePatient handles POST /api/v1/patients.
func (s *Server) CreatePatient(c echo.Context) error {
	var req PatientRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePatientCommand(actorFrom(c), id, req.FullName, details)
	if err != nil {
		return err
	}
	if err = s.h.CreatePatient.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// UpdatePatient handles PUT /api/v1/patients/:id. The full name is not
// editable.
func (s *Server) UpdatePatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req PatientRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdatePatientCommand(actorFrom(c), id, details)
	if err != nil {
		return err
	}
	if err = s.h.UpdatePatient.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DischargePatient handles POST /api/v1/patients/:id/discharge.
func (s *Server) DischargePatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDischargePatientCommand(actorFrom(c), id, s.now())
	if err != nil {
		return err
	}
	if err = s.h.DischargePatient.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
