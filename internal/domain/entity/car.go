package entity

import (
	"time"

	"github.com/google/uuid"
)

// Car represents a customer vehicle registered for service
type Car struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       string    `gorm:"type:varchar(128);not null;index" json:"user_id"`
	Make         string    `gorm:"type:varchar(100);not null" json:"make"`
	Model        string    `gorm:"type:varchar(100);not null" json:"model"`
	Year         int       `gorm:"not null" json:"year"`
	LicensePlate string    `gorm:"type:varchar(20);not null" json:"license_plate"`
	Mileage      *int      `json:"mileage,omitempty"`
	VIN          string    `gorm:"type:varchar(17)" json:"vin,omitempty"`
	Color        string    `gorm:"type:varchar(50)" json:"color,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:CarID" json:"bookings,omitempty"`
}

func (Car) TableName() string {
	return "cars"
}
