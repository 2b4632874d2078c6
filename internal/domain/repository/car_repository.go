package repository

import (
	"context"

	"repairshop-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	FindByIDWithBookings(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.Car, error)
	FindAll(ctx context.Context) ([]entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}
