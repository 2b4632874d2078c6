package converter

import (
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to its response DTO, carrying
// along preloaded car, user and update records when present.
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	resp := &dto.BookingResponse{
		ID:                      booking.ID.String(),
		ReferenceNumber:         booking.ReferenceNumber,
		CarID:                   booking.CarID.String(),
		UserID:                  booking.UserID,
		IssueDesc:               booking.IssueDesc,
		PreferredDate:           booking.PreferredDate,
		Status:                  string(booking.Status),
		PhoneNumber:             booking.PhoneNumber,
		Email:                   booking.Email,
		FirstName:               booking.FirstName,
		LastName:                booking.LastName,
		StreetAddress:           booking.StreetAddress,
		City:                    booking.City,
		State:                   booking.State,
		ZipCode:                 booking.ZipCode,
		Notes:                   booking.Notes,
		TotalPrice:              booking.TotalPrice,
		EstimatedCompletionDate: booking.EstimatedCompletionDate,
		Diagnosis:               booking.Diagnosis,
		PartsNeeded:             booking.PartsNeeded,
		LaborHours:              booking.LaborHours,
		SMSOptIn:                booking.SMSOptIn,
		VehicleMileage:          booking.VehicleMileage,
		ServiceHistoryNotes:     booking.ServiceHistoryNotes,
		CreatedAt:               booking.CreatedAt,
		UpdatedAt:               booking.UpdatedAt,
	}

	if booking.Car.ID != uuid.Nil {
		resp.Car = CarToResponse(&booking.Car)
	}
	if booking.User.ID != "" {
		resp.User = UserToResponse(&booking.User)
	}
	if len(booking.Updates) > 0 {
		resp.Updates = BookingUpdatesToResponses(booking.Updates)
	}

	return resp
}

// BookingsToResponses converts a slice of Booking entities to response DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
