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

type CarHandler struct {
	carUsecase usecase.CarUsecase
	validator  *validator.CustomValidator
}

func NewCarHandler(carUsecase usecase.CarUsecase, validator *validator.CustomValidator) *CarHandler {
	return &CarHandler{
		carUsecase: carUsecase,
		validator:  validator,
	}
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	// Only staff may register a car on behalf of another user.
	if !middleware.GetIsAdminFromContext(r.Context()) {
		req.UserID = ""
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	car, err := h.carUsecase.CreateCar(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidYear:
			response.ValidationError(w, map[string]string{"year": "year is not a valid model year"})
		default:
			response.InternalServerError(w, "Failed to create car")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Car created successfully", car)
}

func (h *CarHandler) GetMyCars(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	cars, err := h.carUsecase.GetMyCars(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get cars")
		return
	}

	response.Success(w, http.StatusOK, "Cars retrieved successfully", cars)
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carUsecase.ListCars(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list cars")
		return
	}

	response.Success(w, http.StatusOK, "Cars retrieved successfully", cars)
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	carID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid car ID")
		return
	}

	isAdmin := middleware.GetIsAdminFromContext(r.Context())

	car, err := h.carUsecase.GetCar(r.Context(), carID, isAdmin, userID)
	if err != nil {
		switch err {
		case usecase.ErrCarNotFound:
			response.NotFound(w, "Car not found")
		case usecase.ErrCarNotOwned:
			response.Forbidden(w, "Car belongs to another user")
		default:
			response.InternalServerError(w, "Failed to get car")
		}
		return
	}

	response.Success(w, http.StatusOK, "Car retrieved successfully", car)
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	carID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid car ID")
		return
	}

	var req dto.UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	isAdmin := middleware.GetIsAdminFromContext(r.Context())

	car, err := h.carUsecase.UpdateCar(r.Context(), carID, userID, isAdmin, &req)
	if err != nil {
		switch err {
		case usecase.ErrCarNotFound:
			response.NotFound(w, "Car not found")
		case usecase.ErrCarNotOwned:
			response.Forbidden(w, "Car belongs to another user")
		case usecase.ErrInvalidYear:
			response.ValidationError(w, map[string]string{"year": "year is not a valid model year"})
		default:
			response.InternalServerError(w, "Failed to update car")
		}
		return
	}

	response.Success(w, http.StatusOK, "Car updated successfully", car)
}

// DeleteCar removes a car that has no bookings attached. Cars with any
// booking, past or present, are kept for history.
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	carID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid car ID")
		return
	}

	isAdmin := middleware.GetIsAdminFromContext(r.Context())

	if err := h.carUsecase.DeleteCar(r.Context(), carID, userID, isAdmin); err != nil {
		switch err {
		case usecase.ErrCarNotFound:
			response.NotFound(w, "Car not found")
		case usecase.ErrCarNotOwned:
			response.Forbidden(w, "Car belongs to another user")
		case usecase.ErrCarHasBookings:
			response.Conflict(w, "Car has existing bookings and cannot be deleted")
		default:
			response.InternalServerError(w, "Failed to delete car")
		}
		return
	}

	response.Success(w, http.StatusOK, "Car deleted successfully", nil)
}
