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

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrIssueDescTooShort:
			response.ValidationError(w, map[string]string{"issue_desc": "issue description is too short"})
		case usecase.ErrInvalidDateFormat:
			response.ValidationError(w, map[string]string{"preferred_date": "preferred date is not a valid date"})
		case usecase.ErrCarNotFound:
			response.NotFound(w, "Car not found")
		case usecase.ErrCarNotOwned:
			response.Forbidden(w, "Car belongs to another user")
		case usecase.ErrReferenceExhausted:
			response.Conflict(w, "Could not allocate a booking reference")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	bookings, err := h.bookingUsecase.GetMyBookings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetRepairHistory lists the caller's bookings that progressed past PENDING.
func (h *BookingHandler) GetRepairHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	bookings, err := h.bookingUsecase.GetRepairHistory(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get repair history")
		return
	}

	response.Success(w, http.StatusOK, "Repair history retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
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

	isAdmin := middleware.GetIsAdminFromContext(r.Context())

	booking, err := h.bookingUsecase.GetBooking(r.Context(), userID, isAdmin, bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking belongs to another user")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
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

	booking, err := h.bookingUsecase.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking belongs to another user")
		case usecase.ErrBookingTerminal:
			response.Conflict(w, "Booking is already completed or cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}

// LookupBooking resolves a booking by reference number plus phone number.
// Both must match; a miss is reported as not found without hinting which
// half was wrong.
func (h *BookingHandler) LookupBooking(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	phone := r.URL.Query().Get("phone")
	if reference == "" || phone == "" {
		fields := make(map[string]string)
		if reference == "" {
			fields["reference"] = "reference is required"
		}
		if phone == "" {
			fields["phone"] = "phone is required"
		}
		response.ValidationError(w, fields)
		return
	}

	booking, err := h.bookingUsecase.LookupByReference(r.Context(), reference, phone)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to look up booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}
