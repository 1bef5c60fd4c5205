package http

import (
	"time"

	"clinicmeals/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccountID   string    `json:"account_id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
}

type NewAccountRequest struct {
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type PatientRequest struct {
	FullName  string `json:"full_name"`
	Room      string `json:"room"`
	Service   string `json:"service"`
	Diet      string `json:"diet"`
	Allergies string `json:"allergies"`
}

type PatientResponse struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	Room         string     `json:"room"`
	Service      string     `json:"service"`
	Diet         string     `json:"diet"`
	Allergies    string     `json:"allergies"`
	AdmittedAt   time.Time  `json:"admitted_at"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
}

func toPatientResponse(v queries.PatientView) PatientResponse {
	return PatientResponse{
		ID:           v.ID.String(),
		FullName:     v.FullName,
		Room:         v.Room,
		Service:      v.Service,
		Diet:         v.Diet.String(),
		Allergies:    v.Allergies,
		AdmittedAt:   v.AdmittedAt,
		DischargedAt: v.DischargedAt,
	}
}

type WeeklyMenuItemRequest struct {
	Day         string `json:"day"`
	Diet        string `json:"diet"`
	MealType    string `json:"meal_type"`
	DishName    string `json:"dish_name"`
	Description string `json:"description"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

type WeeklyMenuItemResponse struct {
	ID          string    `json:"id"`
	Day         string    `json:"day"`
	Diet        string    `json:"diet"`
	MealType    string    `json:"meal_type"`
	DishName    string    `json:"dish_name"`
	Description string    `json:"description,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

type EmployeeMenuRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
}

type EmployeeMenuUpdateRequest struct {
	BasePrice *decimal.Decimal `json:"base_price"`
	Available *bool            `json:"available"`
}

type EmployeeMenuResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Available   bool            `json:"available"`
	HasPhoto    bool            `json:"has_photo"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PatientOrderRequest struct {
	PatientID    string `json:"patient_id"`
	MealType     string `json:"meal_type"`
	Day          string `json:"day"`
	Instructions string `json:"instructions"`
}

type PatientOrderCreatedResponse struct {
	ID       string `json:"id"`
	MenuText string `json:"menu_text"`
	Outcome  string `json:"outcome"`
}

type EmployeeOrderRequest struct {
	MenuID           string `json:"menu_id"`
	Accompaniments   int    `json:"accompaniments"`
	DeliveryLocation string `json:"delivery_location"`
	Instructions     string `json:"instructions"`
}

type EmployeeOrderCreatedResponse struct {
	ID         string          `json:"id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type LifecycleResponse struct {
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PreparedAt  *time.Time `json:"prepared_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

func toLifecycleResponse(v queries.LifecycleView) LifecycleResponse {
	return LifecycleResponse{
		Status:      v.Status.String(),
		CreatedAt:   v.CreatedAt,
		PreparedAt:  v.PreparedAt,
		DeliveredAt: v.DeliveredAt,
	}
}

type PatientOrderResponse struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	PatientName  string `json:"patient_name"`
	Room         string `json:"room"`
	OrderedBy    string `json:"ordered_by"`
	MealType     string `json:"meal_type"`
	Day          string `json:"day"`
	MenuText     string `json:"menu_text"`
	Instructions string `json:"instructions,omitempty"`
	LifecycleResponse
}

type EmployeeOrderResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	MenuID           string          `json:"menu_id"`
	MenuName         string          `json:"menu_name"`
	BasePrice        decimal.Decimal `json:"base_price"`
	Accompaniments   int             `json:"accompaniments"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	DeliveryLocation string          `json:"delivery_location"`
	Instructions     string          `json:"instructions,omitempty"`
	LifecycleResponse
}

type BoardEntryResponse struct {
	Kind         string    `json:"kind"`
	ID           string    `json:"id"`
	Menu         string    `json:"menu"`
	Destination  string    `json:"destination"`
	Instructions string    `json:"instructions,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
