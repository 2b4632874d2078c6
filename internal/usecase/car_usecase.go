package usecase

import (
	"context"
	"errors"
	"time"

	"repairshop-backend/internal/converter"
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"
	"repairshop-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidYear    = errors.New("invalid model year")
	ErrCarHasBookings = errors.New("car has existing bookings")
)

type CarUsecase interface {
	CreateCar(ctx context.Context, userID string, req *dto.CreateCarRequest) (*dto.CarResponse, error)
	GetCar(ctx context.Context, carID uuid.UUID, isAdmin bool, requesterID string) (*dto.CarResponse, error)
	GetMyCars(ctx context.Context, userID string) (*dto.CarListResponse, error)
	ListCars(ctx context.Context) (*dto.CarListResponse, error)
	UpdateCar(ctx context.Context, carID uuid.UUID, ownerID string, isAdmin bool, req *dto.UpdateCarRequest) (*dto.CarResponse, error)
	DeleteCar(ctx context.Context, carID uuid.UUID, ownerID string, isAdmin bool) error
}

type carUsecase struct {
	log         *logrus.Logger
	carRepo     repository.CarRepository
	bookingRepo repository.BookingRepository
}

func NewCarUsecase(log *logrus.Logger, carRepo repository.CarRepository, bookingRepo repository.BookingRepository) CarUsecase {
	return &carUsecase{
		log:         log,
		carRepo:     carRepo,
		bookingRepo: bookingRepo,
	}
}

func (u *carUsecase) CreateCar(ctx context.Context, userID string, req *dto.CreateCarRequest) (*dto.CarResponse, error) {
	if req.Year > time.Now().Year()+1 {
		return nil, ErrInvalidYear
	}

	ownerID := userID
	if req.UserID != "" {
		ownerID = req.UserID
	}

	car := &entity.Car{
		UserID:       ownerID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Mileage:      req.Mileage,
		VIN:          req.VIN,
		Color:        req.Color,
	}

	if err := u.carRepo.Create(ctx, car); err != nil {
		u.log.Warnf("Failed to create car: %+v", err)
		return nil, err
	}

	u.log.Infof("Car created: id=%s, owner=%s", car.ID, ownerID)
	return converter.CarToResponse(car), nil
}

func (u *carUsecase) GetCar(ctx context.Context, carID uuid.UUID, isAdmin bool, requesterID string) (*dto.CarResponse, error) {
	car, err := u.carRepo.FindByIDWithBookings(ctx, carID)
	if err != nil {
		u.log.Warnf("Failed to find car %s: %+v", carID, err)
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	if !isAdmin && car.UserID != requesterID {
		return nil, ErrCarNotOwned
	}

	return converter.CarToResponse(car), nil
}

func (u *carUsecase) GetMyCars(ctx context.Context, userID string) (*dto.CarListResponse, error) {
	cars, err := u.carRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to list cars for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.CarListResponse{
		Cars:  converter.CarsToResponses(cars),
		Total: len(cars),
	}, nil
}

func (u *carUsecase) ListCars(ctx context.Context) (*dto.CarListResponse, error) {
	cars, err := u.carRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list cars: %+v", err)
		return nil, err
	}

	return &dto.CarListResponse{
		Cars:  converter.CarsToResponses(cars),
		Total: len(cars),
	}, nil
}

func (u *carUsecase) UpdateCar(ctx context.Context, carID uuid.UUID, requesterID string, isAdmin bool, req *dto.UpdateCarRequest) (*dto.CarResponse, error) {
	if req.Year > time.Now().Year()+1 {
		return nil, ErrInvalidYear
	}

	car, err := u.carRepo.FindByID(ctx, carID)
	if err != nil {
		u.log.Warnf("Failed to find car %s: %+v", carID, err)
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	if !isAdmin && car.UserID != requesterID {
		return nil, ErrCarNotOwned
	}

	car.Make = req.Make
	car.Model = req.Model
	car.Year = req.Year
	car.LicensePlate = req.LicensePlate
	car.Mileage = req.Mileage
	car.VIN = req.VIN
	car.Color = req.Color

	if err := u.carRepo.Update(ctx, car); err != nil {
		u.log.Warnf("Failed to update car %s: %+v", carID, err)
		return nil, err
	}

	return converter.CarToResponse(car), nil
}

// DeleteCar refuses to remove a car that any booking still references, so
// the repair history stays intact.
func (u *carUsecase) DeleteCar(ctx context.Context, carID uuid.UUID, requesterID string, isAdmin bool) error {
	car, err := u.carRepo.FindByID(ctx, carID)
	if err != nil {
		u.log.Warnf("Failed to find car %s: %+v", carID, err)
		return err
	}
	if car == nil {
		return ErrCarNotFound
	}
	if !isAdmin && car.UserID != requesterID {
		return ErrCarNotOwned
	}

	count, err := u.bookingRepo.CountByCarID(ctx, carID)
	if err != nil {
		u.log.Warnf("Failed to count bookings for car %s: %+v", carID, err)
		return err
	}
	if count > 0 {
		return ErrCarHasBookings
	}

	if err := u.carRepo.Delete(ctx, carID); err != nil {
		u.log.Warnf("Failed to delete car %s: %+v", carID, err)
		return err
	}

	u.log.Infof("Car deleted: id=%s", carID)
	return nil
}
