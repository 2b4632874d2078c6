package usecase

import (
	"context"
	"testing"
	"time"

	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCarUsecaseForTest() (CarUsecase, *MockCarRepository, *MockBookingRepository) {
	carRepo := new(MockCarRepository)
	bookingRepo := new(MockBookingRepository)
	uc := NewCarUsecase(testLogger(), carRepo, bookingRepo)
	return uc, carRepo, bookingRepo
}

func TestCarUsecase_CreateCar_Success(t *testing.T) {
	uc, carRepo, _ := newCarUsecaseForTest()

	carRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Car")).Return(nil)

	req := &dto.CreateCarRequest{Make: "Honda", Model: "Civic", Year: 2021, LicensePlate: "ABC-123"}
	result, err := uc.CreateCar(context.Background(), "user-1", req)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "Honda", result.Make)
}

func TestCarUsecase_CreateCar_AdminOnBehalfOfCustomer(t *testing.T) {
	uc, carRepo, _ := newCarUsecaseForTest()

	carRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Car")).Return(nil)

	req := &dto.CreateCarRequest{Make: "Ford", Model: "Focus", Year: 2018, LicensePlate: "XYZ-789", UserID: "customer-2"}
	result, err := uc.CreateCar(context.Background(), "admin-1", req)

	assert.NoError(t, err)
	assert.Equal(t, "customer-2", result.UserID)
}

func TestCarUsecase_CreateCar_FutureYearRejected(t *testing.T) {
	uc, carRepo, _ := newCarUsecaseForTest()

	req := &dto.CreateCarRequest{Make: "Honda", Model: "Civic", Year: time.Now().Year() + 2, LicensePlate: "ABC-123"}
	result, err := uc.CreateCar(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, ErrInvalidYear)
	assert.Nil(t, result)
	carRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCarUsecase_GetCar_OwnershipEnforced(t *testing.T) {
	uc, carRepo, _ := newCarUsecaseForTest()

	carID := uuid.New()
	car := &entity.Car{ID: carID, UserID: "owner"}
	carRepo.On("FindByIDWithBookings", mock.Anything, carID).Return(car, nil)

	result, err := uc.GetCar(context.Background(), carID, false, "owner")
	assert.NoError(t, err)
	assert.NotNil(t, result)

	result, err = uc.GetCar(context.Background(), carID, false, "stranger")
	assert.ErrorIs(t, err, ErrCarNotOwned)
	assert.Nil(t, result)

	result, err = uc.GetCar(context.Background(), carID, true, "stranger")
	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCarUsecase_DeleteCar_BlockedByBookings(t *testing.T) {
	uc, carRepo, bookingRepo := newCarUsecaseForTest()

	carID := uuid.New()
	car := &entity.Car{ID: carID, UserID: "user-1"}
	carRepo.On("FindByID", mock.Anything, carID).Return(car, nil)
	bookingRepo.On("CountByCarID", mock.Anything, carID).Return(int64(2), nil)

	err := uc.DeleteCar(context.Background(), carID, "user-1", false)

	assert.ErrorIs(t, err, ErrCarHasBookings)
	carRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCarUsecase_DeleteCar_Success(t *testing.T) {
	uc, carRepo, bookingRepo := newCarUsecaseForTest()

	carID := uuid.New()
	car := &entity.Car{ID: carID, UserID: "user-1"}
	carRepo.On("FindByID", mock.Anything, carID).Return(car, nil)
	bookingRepo.On("CountByCarID", mock.Anything, carID).Return(int64(0), nil)
	carRepo.On("Delete", mock.Anything, carID).Return(nil)

	err := uc.DeleteCar(context.Background(), carID, "user-1", false)

	assert.NoError(t, err)
	carRepo.AssertExpectations(t)
}

func TestCarUsecase_UpdateCar_NotFound(t *testing.T) {
	uc, carRepo, _ := newCarUsecaseForTest()

	carID := uuid.New()
	carRepo.On("FindByID", mock.Anything, carID).Return(nil, nil)

	req := &dto.UpdateCarRequest{Make: "Honda", Model: "Civic", Year: 2021, LicensePlate: "ABC-123"}
	result, err := uc.UpdateCar(context.Background(), carID, "user-1", false, req)

	assert.ErrorIs(t, err, ErrCarNotFound)
	assert.Nil(t, result)
}
