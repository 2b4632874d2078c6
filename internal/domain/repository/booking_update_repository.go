package repository

import (
	"context"

	"repairshop-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingUpdateRepository is append-only: records are created and read,
// never updated or deleted.
type BookingUpdateRepository interface {
	Create(ctx context.Context, update *entity.BookingUpdate) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingUpdate, error)
}
