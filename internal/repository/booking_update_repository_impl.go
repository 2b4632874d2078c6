package repository

import (
	"context"

	"repairshop-backend/internal/domain/entity"
	domainRepo "repairshop-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingUpdateRepository struct {
	db *gorm.DB
}

func NewBookingUpdateRepository(db *gorm.DB) domainRepo.BookingUpdateRepository {
	return &bookingUpdateRepository{db: db}
}

func (r *bookingUpdateRepository) Create(ctx context.Context, update *entity.BookingUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *bookingUpdateRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingUpdate, error) {
	var updates []entity.BookingUpdate
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&updates).Error
	if err != nil {
		return nil, err
	}
	return updates, nil
}
