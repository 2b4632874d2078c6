package repository

import (
	"context"
	"time"

	"repairshop-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingFilter narrows admin booking listings
type BookingFilter struct {
	Status   entity.BookingStatus
	FromDate *time.Time
	ToDate   *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]entity.Booking, error)
	FindByReferenceAndPhone(ctx context.Context, reference, phone string) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCarID(ctx context.Context, carID uuid.UUID) (int64, error)
}
