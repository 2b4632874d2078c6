package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"repairshop-backend/config"
	"repairshop-backend/internal/converter"
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"
	"repairshop-backend/internal/domain/repository"
	"repairshop-backend/internal/service"
	"repairshop-backend/pkg/reference"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotOwned    = errors.New("booking does not belong to you")
	ErrBookingTerminal    = errors.New("booking is in a terminal status")
	ErrCarNotFound        = errors.New("car not found")
	ErrCarNotOwned        = errors.New("car does not belong to you")
	ErrIssueDescTooShort  = errors.New("issue description is too short")
	ErrInvalidDateFormat  = errors.New("invalid date format")
	ErrReferenceExhausted = errors.New("could not generate a unique booking reference")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, userID string, isAdmin bool, bookingID uuid.UUID) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, userID string) (*dto.BookingListResponse, error)
	GetRepairHistory(ctx context.Context, userID string) (*dto.BookingListResponse, error)
	CancelBooking(ctx context.Context, userID string, bookingID uuid.UUID) (*dto.BookingResponse, error)
	LookupByReference(ctx context.Context, referenceNumber, phoneNumber string) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	log          *logrus.Logger
	cfg          config.BookingConfig
	bookingRepo  repository.BookingRepository
	carRepo      repository.CarRepository
	updateRepo   repository.BookingUpdateRepository
	notifService *service.NotificationService
}

func NewBookingUsecase(
	log *logrus.Logger,
	cfg config.BookingConfig,
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	updateRepo repository.BookingUpdateRepository,
	notifService *service.NotificationService,
) BookingUsecase {
	return &bookingUsecase{
		log:          log,
		cfg:          cfg,
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		updateRepo:   updateRepo,
		notifService: notifService,
	}
}

// CreateBooking validates the payload, confirms car ownership and persists a
// new PENDING booking with a freshly generated reference. No notification is
// sent on creation.
func (u *bookingUsecase) CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if len(req.IssueDesc) < u.cfg.MinIssueDescLen {
		return nil, ErrIssueDescTooShort
	}

	preferredDate, err := parseFlexibleDate(req.PreferredDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return nil, ErrCarNotFound
	}

	car, err := u.carRepo.FindByID(ctx, carID)
	if err != nil {
		u.log.Warnf("Failed to find car %s: %+v", carID, err)
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	if car.UserID != userID {
		return nil, ErrCarNotOwned
	}

	booking := &entity.Booking{
		CarID:               carID,
		UserID:              userID,
		IssueDesc:           req.IssueDesc,
		PreferredDate:       preferredDate,
		Status:              entity.BookingStatusPending,
		PhoneNumber:         req.PhoneNumber,
		Email:               req.Email,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		StreetAddress:       req.StreetAddress,
		City:                req.City,
		State:               req.State,
		ZipCode:             req.ZipCode,
		SMSOptIn:            req.SMSOptIn,
		VehicleMileage:      req.VehicleMileage,
		ServiceHistoryNotes: req.ServiceHistoryNotes,
	}

	// The reference column carries a unique index; regenerate and retry on
	// the rare collision instead of checking first.
	attempts := u.cfg.ReferenceRetries
	if attempts < 1 {
		attempts = 1
	}
	var created bool
	for i := 0; i < attempts; i++ {
		booking.ReferenceNumber = reference.Generate(u.cfg.ReferencePrefix)
		err = u.bookingRepo.Create(ctx, booking)
		if err == nil {
			created = true
			break
		}
		if !isUniqueViolation(err) {
			u.log.Warnf("Failed to create booking: %+v", err)
			return nil, err
		}
		u.log.Infof("Booking reference collision on %s, retrying", booking.ReferenceNumber)
	}
	if !created {
		return nil, ErrReferenceExhausted
	}

	full, err := u.bookingRepo.FindByID(ctx, booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking created: id=%s, ref=%s, car=%s", booking.ID, booking.ReferenceNumber, carID)
	return converter.BookingToResponse(full), nil
}

// GetBooking returns a booking to its owner or to an admin.
func (u *bookingUsecase) GetBooking(ctx context.Context, userID string, isAdmin bool, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !isAdmin && booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetMyBookings(ctx context.Context, userID string) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// GetRepairHistory returns the requester's past and active repairs, leaving
// out bookings still awaiting confirmation.
func (u *bookingUsecase) GetRepairHistory(ctx context.Context, userID string) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for user %s: %+v", userID, err)
		return nil, err
	}

	history := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != entity.BookingStatusPending {
			history = append(history, b)
		}
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(history),
		Total:    len(history),
	}, nil
}

// CancelBooking is the owner-side cancel: it moves the booking to CANCELLED,
// appends the status-change record and notifies the customer when opted in.
func (u *bookingUsecase) CancelBooking(ctx context.Context, userID string, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}
	if booking.IsTerminal() {
		return nil, ErrBookingTerminal
	}

	oldStatus := booking.Status
	booking.Status = entity.BookingStatusCancelled
	if err := u.bookingRepo.Update(ctx, booking); err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return nil, err
	}

	newStatus := entity.BookingStatusCancelled
	update := &entity.BookingUpdate{
		BookingID: booking.ID,
		Type:      entity.UpdateTypeStatusChange,
		Content:   fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus),
		OldStatus: &oldStatus,
		NewStatus: &newStatus,
		CreatedBy: userID,
		IsPublic:  true,
	}
	if err := u.updateRepo.Create(ctx, update); err != nil {
		// No cross-call transaction exists here; the cancel stands.
		u.log.Warnf("Failed to append status-change record for booking %s: %+v", bookingID, err)
	}

	u.notifService.DispatchStatusChange(ctx, booking, newStatus, "")

	u.log.Infof("Booking cancelled by owner: id=%s", bookingID)
	return converter.BookingToResponse(booking), nil
}

// LookupByReference is the unauthenticated tracking path. Both values must
// match exactly; a single mismatch reads as not found.
func (u *bookingUsecase) LookupByReference(ctx context.Context, referenceNumber, phoneNumber string) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByReferenceAndPhone(ctx, referenceNumber, phoneNumber)
	if err != nil {
		u.log.Warnf("Failed reference lookup for %s: %+v", referenceNumber, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}

// parseFlexibleDate accepts RFC 3339 timestamps and plain dates.
func parseFlexibleDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
