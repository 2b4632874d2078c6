package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	CarID               string `json:"car_id" validate:"required,uuid"`
	IssueDesc           string `json:"issue_desc" validate:"required"`
	PreferredDate       string `json:"preferred_date" validate:"required"`
	PhoneNumber         string `json:"phone_number" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	FirstName           string `json:"first_name" validate:"required"`
	LastName            string `json:"last_name" validate:"required"`
	StreetAddress       string `json:"street_address"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zip_code"`
	SMSOptIn            bool   `json:"sms_opt_in"`
	VehicleMileage      *int   `json:"vehicle_mileage" validate:"omitempty,gte=0"`
	ServiceHistoryNotes string `json:"service_history_notes"`
}

// UpdateBookingRequest carries the admin-side merge update. Pointer fields
// distinguish "not supplied" from zero values.
type UpdateBookingRequest struct {
	Status                  string           `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
	StatusReason            string           `json:"status_reason"`
	Notes                   *string          `json:"notes"`
	PreferredDate           *string          `json:"preferred_date"`
	PhoneNumber             *string          `json:"phone_number"`
	TotalPrice              *decimal.Decimal `json:"total_price"`
	EstimatedCompletionDate *string          `json:"estimated_completion_date"`
	Diagnosis               *string          `json:"diagnosis"`
	PartsNeeded             *string          `json:"parts_needed"`
	LaborHours              *float64         `json:"labor_hours" validate:"omitempty,gte=0"`
	SMSOptIn                *bool            `json:"sms_opt_in"`
}

type NotifyBookingRequest struct {
	Message string `json:"message" validate:"required"`
}

type AddCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	IsPublic bool   `json:"is_public"`
	Type     string `json:"type" validate:"omitempty,oneof=STATUS_CHANGE COMMENT PRICE_UPDATE DIAGNOSIS NOTIFICATION SYSTEM"`
}

// Response DTOs

type BookingResponse struct {
	ID                      string                  `json:"id"`
	ReferenceNumber         string                  `json:"reference_number"`
	CarID                   string                  `json:"car_id"`
	UserID                  string                  `json:"user_id"`
	IssueDesc               string                  `json:"issue_desc"`
	PreferredDate           time.Time               `json:"preferred_date"`
	Status                  string                  `json:"status"`
	PhoneNumber             string                  `json:"phone_number"`
	Email                   string                  `json:"email"`
	FirstName               string                  `json:"first_name"`
	LastName                string                  `json:"last_name"`
	StreetAddress           string                  `json:"street_address,omitempty"`
	City                    string                  `json:"city,omitempty"`
	State                   string                  `json:"state,omitempty"`
	ZipCode                 string                  `json:"zip_code,omitempty"`
	Notes                   string                  `json:"notes"`
	TotalPrice              *decimal.Decimal        `json:"total_price,omitempty"`
	EstimatedCompletionDate *time.Time              `json:"estimated_completion_date,omitempty"`
	Diagnosis               string                  `json:"diagnosis"`
	PartsNeeded             string                  `json:"parts_needed"`
	LaborHours              *float64                `json:"labor_hours,omitempty"`
	SMSOptIn                bool                    `json:"sms_opt_in"`
	VehicleMileage          *int                    `json:"vehicle_mileage,omitempty"`
	ServiceHistoryNotes     string                  `json:"service_history_notes,omitempty"`
	Car                     *CarResponse            `json:"car,omitempty"`
	User                    *UserResponse           `json:"user,omitempty"`
	Updates                 []BookingUpdateResponse `json:"updates,omitempty"`
	CreatedAt               time.Time               `json:"created_at"`
	UpdatedAt               time.Time               `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// UpdateBookingResponse reports the booking mutation together with the
// notification sub-step outcome, which can fail without failing the update.
type UpdateBookingResponse struct {
	Booking          BookingResponse `json:"booking"`
	NotificationSent *bool           `json:"notification_sent,omitempty"`
}

type NotifyBookingResponse struct {
	MessageID string                `json:"message_id"`
	Update    BookingUpdateResponse `json:"update"`
}

type BookingUpdateResponse struct {
	ID        int64     `json:"id"`
	BookingID string    `json:"booking_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	OldStatus *string   `json:"old_status,omitempty"`
	NewStatus *string   `json:"new_status,omitempty"`
	CreatedBy string    `json:"created_by"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingUpdateListResponse struct {
	Updates []BookingUpdateResponse `json:"updates"`
	Total   int                     `json:"total"`
}
