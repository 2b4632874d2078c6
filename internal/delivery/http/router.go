package http

import (
	"net/http"

	"repairshop-backend/internal/delivery/http/handler"
	"repairshop-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	bookingHandler      *handler.BookingHandler
	adminBookingHandler *handler.AdminBookingHandler
	carHandler          *handler.CarHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	adminBookingHandler *handler.AdminBookingHandler,
	carHandler *handler.CarHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		bookingHandler:      bookingHandler,
		adminBookingHandler: adminBookingHandler,
		carHandler:          carHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/exchange", r.authHandler.ExchangeToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public booking lookup by reference + phone
	api.HandleFunc("/bookings/lookup", r.bookingHandler.LookupBooking).Methods(http.MethodGet)

	// Customer routes (protected)
	customer := api.PathPrefix("").Subrouter()
	customer.Use(r.authMiddleware.Authenticate)

	customer.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	customer.HandleFunc("/bookings/my", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	customer.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	customer.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	customer.HandleFunc("/repair-history", r.bookingHandler.GetRepairHistory).Methods(http.MethodGet)

	customer.HandleFunc("/cars", r.carHandler.CreateCar).Methods(http.MethodPost)
	customer.HandleFunc("/cars", r.carHandler.GetMyCars).Methods(http.MethodGet)
	customer.HandleFunc("/cars/{id}", r.carHandler.GetCar).Methods(http.MethodGet)
	customer.HandleFunc("/cars/{id}", r.carHandler.UpdateCar).Methods(http.MethodPut)
	customer.HandleFunc("/cars/{id}", r.carHandler.DeleteCar).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Booking lifecycle management (admin)
	admin.HandleFunc("/bookings", r.adminBookingHandler.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.adminBookingHandler.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.adminBookingHandler.UpdateBooking).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}", r.adminBookingHandler.DeleteBooking).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{id}/notify", r.adminBookingHandler.SendNotification).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/comments", r.adminBookingHandler.AddComment).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/updates", r.adminBookingHandler.GetUpdates).Methods(http.MethodGet)

	// Car management (admin)
	admin.HandleFunc("/cars", r.carHandler.ListCars).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
