package http

import (
	"io"
	"net/http"

	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/application/usecases/queries"
	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (r WeeklyMenuItemRequest) slot() (catalog.Slot, error) {
	day, err := kernel.DayOfWeekFromString(r.Day)
	if err != nil {
		return catalog.Slot{}, err
	}
	diet, err := kernel.DietFromString(r.Diet)
	if err != nil {
		return catalog.Slot{}, err
	}
	mealType, err := kernel.MealTypeFromString(r.MealType)
	if err != nil {
		return catalog.Slot{}, err
	}
	return catalog.Slot{Day: day, Diet: diet, MealType: mealType}, nil
}

// ListWeeklyMenu handles GET /api/v1/catalog/weekly?available=.
func (s *Server) ListWeeklyMenu(c echo.Context) error {
	availableOnly, err := boolParam(c, "available")
	if err != nil {
		return err
	}
	q, err := queries.NewGetWeeklyMenuQuery(actorFrom(c), availableOnly)
	if err != nil {
		return err
	}
	views, err := s.h.WeeklyMenu.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := make([]WeeklyMenuItemResponse, len(views))
	for i, v := range views {
		resp[i] = WeeklyMenuItemResponse{
			ID:          v.ID.String(),
			Day:         v.Day.String(),
			Diet:        v.Diet.String(),
			MealType:    v.MealType.String(),
			DishName:    v.DishName,
			Description: v.Description,
			Available:   v.Available,
			CreatedAt:   v.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// AddWeeklyMenuItem handles POST /api/v1/catalog/weekly.
func (s *Server) AddWeeklyMenuItem(c echo.Context) error {
	var req WeeklyMenuItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	slot, err := req.slot()
	if err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := commands.NewAddWeeklyMenuItemCommand(actorFrom(c), id, slot, req.DishName, req.Description)
	if err != nil {
		return err
	}
	if err = s.h.AddWeeklyMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// SetWeeklyMenuItemAvailability handles PUT /api/v1/catalog/weekly/:id/availability.
func (s *Server) SetWeeklyMenuItemAvailability(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req AvailabilityRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if req.Available == nil {
		return badRequest("available is required")
	}
	cmd, err := commands.NewSetWeeklyMenuItemAvailabilityCommand(actorFrom(c), id, *req.Available)
	if err != nil {
		return err
	}
	if err = s.h.SetWeeklyItemAvailable.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListEmployeeMenus handles GET /api/v1/catalog/employee?available=.
func (s *Server) ListEmployeeMenus(c echo.Context) error {
	availableOnly, err := boolParam(c, "available")
	if err != nil {
		return err
	}
	q, err := queries.NewGetEmployeeMenusQuery(actorFrom(c), availableOnly)
	if err != nil {
		return err
	}
	views, err := s.h.EmployeeMenus.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := make([]EmployeeMenuResponse, len(views))
	for i, v := range views {
		resp[i] = EmployeeMenuResponse{
			ID:          v.ID.String(),
			Name:        v.Name,
			Description: v.Description,
			BasePrice:   v.BasePrice.Amount(),
			Available:   v.Available,
			HasPhoto:    v.HasPhoto,
			CreatedAt:   v.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// AddEmployeeMenu handles POST /api/v1/catalog/employee.
func (s *Server) AddEmployeeMenu(c echo.Context) error {
	var req EmployeeMenuRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	price, err := kernel.NewPrice(req.BasePrice)
	if err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := commands.NewAddEmployeeMenuCommand(actorFrom(c), id, req.Name, req.Description, price)
	if err != nil {
		return err
	}
	if err = s.h.AddEmployeeMenu.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// UpdateEmployeeMenu handles PUT /api/v1/catalog/employee/:id. Absent fields
// are left unchanged.
func (s *Server) UpdateEmployeeMenu(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req EmployeeMenuUpdateRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	var price *kernel.Price
	if req.BasePrice != nil {
		p, priceErr := kernel.NewPrice(*req.BasePrice)
		if priceErr != nil {
			return priceErr
		}
		price = &p
	}
	cmd, err := commands.NewUpdateEmployeeMenuCommand(actorFrom(c), id, price, req.Available)
	if err != nil {
		return err
	}
	if err = s.h.UpdateEmployeeMenu.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AttachEmployeeMenuPhoto handles PUT /api/v1/catalog/employee/:id/photo with
// a multipart "photo" file.
func (s *Server) AttachEmployeeMenuPhoto(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return badRequest("photo file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest("photo file is unreadable")
	}
	defer f.Close()

	// One byte over the limit is enough for the photo to be rejected as too big.
	data, err := io.ReadAll(io.LimitReader(f, catalog.MaxPhotoSize+1))
	if err != nil {
		return badRequest("photo file is unreadable")
	}
	cmd, err := commands.NewAttachEmployeeMenuPhotoCommand(actorFrom(c), id, data)
	if err != nil {
		return err
	}
	if err = s.h.AttachEmployeeMenuPhoto.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetEmployeeMenuPhoto handles GET /api/v1/catalog/employee/:id/photo. It is
// public so that image tags can load it.
func (s *Server) GetEmployeeMenuPhoto(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	q, err := queries.NewGetEmployeeMenuPhotoQuery(id)
	if err != nil {
		return err
	}
	photo, err := s.h.EmployeeMenuPhoto.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, photo.ContentType, photo.Data)
}
