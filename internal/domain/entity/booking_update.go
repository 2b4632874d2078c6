package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingUpdateType classifies entries in a booking's activity trail
type BookingUpdateType string

const (
	UpdateTypeStatusChange BookingUpdateType = "STATUS_CHANGE"
	UpdateTypeComment      BookingUpdateType = "COMMENT"
	UpdateTypePriceUpdate  BookingUpdateType = "PRICE_UPDATE"
	UpdateTypeDiagnosis    BookingUpdateType = "DIAGNOSIS"
	UpdateTypeNotification BookingUpdateType = "NOTIFICATION"
	UpdateTypeSystem       BookingUpdateType = "SYSTEM"
)

// IsValidUpdateType reports whether t is a known update type
func IsValidUpdateType(t string) bool {
	switch BookingUpdateType(t) {
	case UpdateTypeStatusChange, UpdateTypeComment, UpdateTypePriceUpdate,
		UpdateTypeDiagnosis, UpdateTypeNotification, UpdateTypeSystem:
		return true
	}
	return false
}

// BookingUpdate is an append-only activity record attached to a booking.
// Records are never mutated after creation.
type BookingUpdate struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uuid.UUID         `gorm:"type:uuid;not null;index" json:"booking_id"`
	Type      BookingUpdateType `gorm:"type:varchar(30);not null" json:"type"`
	Content   string            `gorm:"type:text;not null" json:"content"`
	OldStatus *BookingStatus    `gorm:"type:booking_status" json:"old_status,omitempty"`
	NewStatus *BookingStatus    `gorm:"type:booking_status" json:"new_status,omitempty"`
	CreatedBy string            `gorm:"type:varchar(128);not null" json:"created_by"`
	IsPublic  bool              `gorm:"not null;default:false" json:"is_public"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (BookingUpdate) TableName() string {
	return "booking_updates"
}
