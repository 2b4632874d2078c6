package dto

import "time"

// Request DTOs

type CreateCarRequest struct {
	Make         string `json:"make" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Year         int    `json:"year" validate:"required,gte=1900"`
	LicensePlate string `json:"license_plate" validate:"required"`
	Mileage      *int   `json:"mileage" validate:"omitempty,gte=0"`
	VIN          string `json:"vin" validate:"omitempty,len=17"`
	Color        string `json:"color"`
	// UserID is honored only on the admin create path
	UserID string `json:"user_id"`
}

type UpdateCarRequest struct {
	Make         string `json:"make" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Year         int    `json:"year" validate:"required,gte=1900"`
	LicensePlate string `json:"license_plate" validate:"required"`
	Mileage      *int   `json:"mileage" validate:"omitempty,gte=0"`
	VIN          string `json:"vin" validate:"omitempty,len=17"`
	Color        string `json:"color"`
}

// Response DTOs

type CarResponse struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Year         int               `json:"year"`
	LicensePlate string            `json:"license_plate"`
	Mileage      *int              `json:"mileage,omitempty"`
	VIN          string            `json:"vin,omitempty"`
	Color        string            `json:"color,omitempty"`
	Bookings     []BookingResponse `json:"bookings,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CarListResponse struct {
	Cars  []CarResponse `json:"cars"`
	Total int           `json:"total"`
}
