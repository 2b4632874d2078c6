package repository

import (
	"context"
	"errors"

	"repairshop-backend/internal/domain/entity"
	domainRepo "repairshop-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Car").
		Preload("User").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter domainRepo.BookingFilter) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := r.db.WithContext(ctx).Preload("Car").Preload("User")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("preferred_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("preferred_date <= ?", *filter.ToDate)
	}
	err := query.Order("preferred_date DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByReferenceAndPhone requires an exact, case-sensitive match on both
// values. The phone number acts as the lookup secret on this path.
func (r *bookingRepository) FindByReferenceAndPhone(ctx context.Context, reference, phone string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("reference_number = ? AND phone_number = ?", reference, phone).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Booking{}, "id = ?", id).Error
}

func (r *bookingRepository) CountByCarID(ctx context.Context, carID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("car_id = ?", carID).
		Count(&count).Error
	return count, err
}
