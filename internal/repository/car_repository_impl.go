package repository

import (
	"context"
	"errors"

	"repairshop-backend/internal/domain/entity"
	domainRepo "repairshop-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) domainRepo.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	var car entity.Car
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&car).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) FindByIDWithBookings(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	var car entity.Car
	err := r.db.WithContext(ctx).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("bookings.created_at DESC")
		}).
		Where("id = ?", id).
		First(&car).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Car, error) {
	var cars []entity.Car
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) FindAll(ctx context.Context) ([]entity.Car, error) {
	var cars []entity.Car
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Car{}, "id = ?", id).Error
}
