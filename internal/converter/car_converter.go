package converter

import (
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"
)

func CarToResponse(car *entity.Car) *dto.CarResponse {
	if car == nil {
		return nil
	}

	resp := &dto.CarResponse{
		ID:           car.ID.String(),
		UserID:       car.UserID,
		Make:         car.Make,
		Model:        car.Model,
		Year:         car.Year,
		LicensePlate: car.LicensePlate,
		Mileage:      car.Mileage,
		VIN:          car.VIN,
		Color:        car.Color,
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
	}

	if len(car.Bookings) > 0 {
		resp.Bookings = BookingsToResponses(car.Bookings)
	}

	return resp
}

func CarsToResponses(cars []entity.Car) []dto.CarResponse {
	responses := make([]dto.CarResponse, len(cars))
	for i := range cars {
		responses[i] = *CarToResponse(&cars[i])
	}
	return responses
}
