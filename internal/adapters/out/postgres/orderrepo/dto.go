package orderrepo

import (
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LifecycleDTO is the state machine part shared by both order tables.
type LifecycleDTO struct {
	Status      string
	CreatedAt   time.Time
	PreparedAt  *time.Time
	DeliveredAt *time.Time
	Version     int
}

type PatientOrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID    uuid.UUID `gorm:"type:uuid;index"`
	OrderedBy    uuid.UUID `gorm:"type:uuid"`
	MealType     string
	Day          string
	MenuText     string
	Instructions string
	LifecycleDTO `gorm:"embedded"`
}

func (PatientOrderDTO) TableName() string {
	return "patient_orders"
}

type EmployeeOrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID `gorm:"type:uuid;index"`
	MenuID           uuid.UUID `gorm:"type:uuid"`
	MenuName         string
	BasePrice        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Accompaniments   int
	TotalPrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryLocation string
	Instructions     string
	LifecycleDTO     `gorm:"embedded"`
}

func (EmployeeOrderDTO) TableName() string {
	return "employee_orders"
}

func lifecycleFromDomain(lc order.Lifecycle) LifecycleDTO {
	return LifecycleDTO{
		Status:      lc.Status().String(),
		CreatedAt:   lc.CreatedAt(),
		PreparedAt:  lc.PreparedAt(),
		DeliveredAt: lc.DeliveredAt(),
		Version:     lc.Version(),
	}
}

func lifecycleToDomain(kind order.Kind, dto LifecycleDTO) (order.Lifecycle, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.Lifecycle{}, err
	}
	return order.RestoreLifecycle(kind, status, dto.CreatedAt, dto.PreparedAt, dto.DeliveredAt, dto.Version)
}

func patientOrderFromDomain(o *order.PatientOrder) PatientOrderDTO {
	return PatientOrderDTO{
		ID:           o.ID().Bytes(),
		PatientID:    o.PatientID().Bytes(),
		OrderedBy:    o.OrderedBy().Bytes(),
		MealType:     o.MealType().String(),
		Day:          o.Day().String(),
		MenuText:     o.MenuText(),
		Instructions: o.Instructions(),
		LifecycleDTO: lifecycleFromDomain(o.Lifecycle()),
	}
}

func patientOrderToDomain(dto PatientOrderDTO) (*order.PatientOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}
	orderedBy, err := kernel.UUIDFromBytes(dto.OrderedBy[:])
	if err != nil {
		return nil, err
	}
	mealType, err := kernel.MealTypeFromString(dto.MealType)
	if err != nil {
		return nil, err
	}
	day, err := kernel.DayOfWeekFromString(dto.Day)
	if err != nil {
		return nil, err
	}
	lc, err := lifecycleToDomain(order.PatientOrderKind, dto.LifecycleDTO)
	if err != nil {
		return nil, err
	}

	return order.RestorePatientOrder(id, patientID, orderedBy, mealType, day, dto.MenuText, dto.Instructions, lc)
}

func employeeOrderFromDomain(o *order.EmployeeOrder) EmployeeOrderDTO {
	return EmployeeOrderDTO{
		ID:               o.ID().Bytes(),
		EmployeeID:       o.EmployeeID().Bytes(),
		MenuID:           o.MenuID().Bytes(),
		MenuName:         o.MenuName(),
		BasePrice:        o.BasePrice().Amount(),
		Accompaniments:   o.Accompaniments(),
		TotalPrice:       o.TotalPrice().Amount(),
		DeliveryLocation: o.DeliveryLocation(),
		Instructions:     o.Instructions(),
		LifecycleDTO:     lifecycleFromDomain(o.Lifecycle()),
	}
}

func employeeOrderToDomain(dto EmployeeOrderDTO, calc order.PriceCalculator) (*order.EmployeeOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}
	base, err := kernel.NewPrice(dto.BasePrice)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}
	lc, err := lifecycleToDomain(order.EmployeeOrderKind, dto.LifecycleDTO)
	if err != nil {
		return nil, err
	}

	return order.RestoreEmployeeOrder(order.EmployeeOrderParams{
		ID:               id,
		EmployeeID:       employeeID,
		MenuID:           menuID,
		MenuName:         dto.MenuName,
		BasePrice:        base,
		Accompaniments:   dto.Accompaniments,
		DeliveryLocation: dto.DeliveryLocation,
		Instructions:     dto.Instructions,
	}, total, lc, calc)
}
