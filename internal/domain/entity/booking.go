package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a repair booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// AllBookingStatuses lists every valid status value
var AllBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// IsValidBookingStatus reports whether s is one of the five status values
func IsValidBookingStatus(s string) bool {
	for _, status := range AllBookingStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Booking represents a vehicle repair appointment
type Booking struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReferenceNumber         string           `gorm:"type:varchar(20);uniqueIndex;not null" json:"reference_number"`
	CarID                   uuid.UUID        `gorm:"type:uuid;not null;index" json:"car_id"`
	UserID                  string           `gorm:"type:varchar(128);not null;index" json:"user_id"`
	IssueDesc               string           `gorm:"type:text;not null" json:"issue_desc"`
	PreferredDate           time.Time        `gorm:"not null;index" json:"preferred_date"`
	Status                  BookingStatus    `gorm:"type:booking_status;not null;default:'PENDING';index" json:"status"`
	PhoneNumber             string           `gorm:"type:varchar(30)" json:"phone_number"`
	Email                   string           `gorm:"type:varchar(255)" json:"email"`
	FirstName               string           `gorm:"type:varchar(100)" json:"first_name"`
	LastName                string           `gorm:"type:varchar(100)" json:"last_name"`
	StreetAddress           string           `gorm:"type:varchar(255)" json:"street_address,omitempty"`
	City                    string           `gorm:"type:varchar(100)" json:"city,omitempty"`
	State                   string           `gorm:"type:varchar(50)" json:"state,omitempty"`
	ZipCode                 string           `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	Notes                   string           `gorm:"type:text" json:"notes"`
	TotalPrice              *decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_price,omitempty"`
	EstimatedCompletionDate *time.Time       `json:"estimated_completion_date,omitempty"`
	Diagnosis               string           `gorm:"type:text" json:"diagnosis"`
	PartsNeeded             string           `gorm:"type:text" json:"parts_needed"`
	LaborHours              *float64         `json:"labor_hours,omitempty"`
	SMSOptIn                bool             `gorm:"not null;default:false" json:"sms_opt_in"`
	VehicleMileage          *int             `json:"vehicle_mileage,omitempty"`
	ServiceHistoryNotes     string           `gorm:"type:text" json:"service_history_notes,omitempty"`
	CreatedAt               time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Car     Car             `gorm:"foreignKey:CarID" json:"car,omitempty"`
	User    User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Updates []BookingUpdate `gorm:"foreignKey:BookingID" json:"updates,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsTerminal reports whether the booking reached a final status. Terminal
// bookings accept no further status transitions.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// IsPending checks if the booking is still awaiting confirmation
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsCancelled checks if the booking was cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
