package catalogrepo

import (
	"time"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WeeklyMenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day         string
	Diet        string
	MealType    string
	DishName    string
	Description string
	Available   bool
	CreatedAt   time.Time
}

func (WeeklyMenuItemDTO) TableName() string {
	return "weekly_menu_items"
}

type EmployeeMenuDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string
	Description      string
	BasePrice        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Available        bool
	Photo            []byte
	PhotoContentType string
	CreatedAt        time.Time
}

func (EmployeeMenuDTO) TableName() string {
	return "employee_menus"
}

func weeklyFromDomain(w *catalog.WeeklyMenuItem) WeeklyMenuItemDTO {
	return WeeklyMenuItemDTO{
		ID:          w.ID().Bytes(),
		Day:         w.Slot().Day.String(),
		Diet:        w.Slot().Diet.String(),
		MealType:    w.Slot().MealType.String(),
		DishName:    w.DishName(),
		Description: w.Description(),
		Available:   w.IsAvailable(),
		CreatedAt:   w.CreatedAt(),
	}
}

func weeklyToDomain(dto WeeklyMenuItemDTO) (*catalog.WeeklyMenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	day, err := kernel.DayOfWeekFromString(dto.Day)
	if err != nil {
		return nil, err
	}
	diet, err := kernel.DietFromString(dto.Diet)
	if err != nil {
		return nil, err
	}
	mealType, err := kernel.MealTypeFromString(dto.MealType)
	if err != nil {
		return nil, err
	}

	slot := catalog.Slot{Day: day, Diet: diet, MealType: mealType}
	return catalog.RestoreWeeklyMenuItem(id, slot, dto.DishName, dto.Description, dto.Available, dto.CreatedAt)
}

func employeeFromDomain(m *catalog.EmployeeMenu) EmployeeMenuDTO {
	return EmployeeMenuDTO{
		ID:               m.ID().Bytes(),
		Name:             m.Name(),
		Description:      m.Description(),
		BasePrice:        m.BasePrice().Amount(),
		Available:        m.IsAvailable(),
		Photo:            m.Photo().Data(),
		PhotoContentType: m.Photo().ContentType(),
		CreatedAt:        m.CreatedAt(),
	}
}

func employeeToDomain(dto EmployeeMenuDTO) (*catalog.EmployeeMenu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.BasePrice)
	if err != nil {
		return nil, err
	}
	var photo catalog.Photo
	if len(dto.Photo) > 0 {
		if photo, err = catalog.NewPhoto(dto.Photo); err != nil {
			return nil, err
		}
	}

	return catalog.RestoreEmployeeMenu(id, dto.Name, dto.Description, price, dto.Available, photo, dto.CreatedAt)
}
