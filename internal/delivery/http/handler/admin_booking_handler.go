package handler

import (
	"encoding/json"
	"net/http"

	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/delivery/http/middleware"
	"repairshop-backend/internal/usecase"
	"repairshop-backend/pkg/response"
	"repairshop-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminBookingHandler struct {
	adminUsecase usecase.AdminBookingUsecase
	validator    *validator.CustomValidator
}

func NewAdminBookingHandler(adminUsecase usecase.AdminBookingUsecase, validator *validator.CustomValidator) *AdminBookingHandler {
	return &AdminBookingHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdminBookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	bookings, err := h.adminUsecase.ListBookings(r.Context(), query.Get("status"), query.Get("from_date"), query.Get("to_date"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.ValidationError(w, map[string]string{"status": "status is not a valid booking status"})
		default:
			response.InternalServerError(w, "Failed to list bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *AdminBookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	booking, err := h.adminUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// UpdateBooking applies repair-field and status changes. The returned
// payload reports whether an SMS notification went out for a status change.
func (h *AdminBookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.adminUsecase.UpdateBooking(r.Context(), adminID, bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingTerminal:
			response.Conflict(w, "Booking is already completed or cancelled")
		case usecase.ErrNegativeAmount:
			response.ValidationError(w, map[string]string{"total_price": "total price must be non-negative"})
		case usecase.ErrInvalidDateFormat:
			response.ValidationError(w, map[string]string{"date": "date is not a valid date"})
		default:
			response.InternalServerError(w, "Failed to update booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking updated successfully", result)
}

func (h *AdminBookingHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.NotifyBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.adminUsecase.SendNotification(r.Context(), adminID, bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrNoPhoneNumber:
			response.ValidationError(w, map[string]string{"phone_number": "booking has no phone number on file"})
		case usecase.ErrSMSDeliveryFailed:
			response.Error(w, http.StatusBadGateway, response.ClassDependency, "Failed to deliver notification")
		default:
			response.InternalServerError(w, "Failed to send notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification sent successfully", result)
}

func (h *AdminBookingHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	comment, err := h.adminUsecase.AddComment(r.Context(), adminID, bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to add comment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Comment added successfully", comment)
}

func (h *AdminBookingHandler) GetUpdates(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	updates, err := h.adminUsecase.GetUpdates(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to get booking updates")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking updates retrieved successfully", updates)
}

func (h *AdminBookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	if err := h.adminUsecase.DeleteBooking(r.Context(), bookingID); err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to delete booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}
