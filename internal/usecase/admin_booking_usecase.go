package usecase

import (
	"context"
	"errors"
	"fmt"

	"repairshop-backend/internal/converter"
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"
	"repairshop-backend/internal/domain/repository"
	"repairshop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrNegativeAmount    = errors.New("amount must be non-negative")
	ErrNoPhoneNumber     = errors.New("booking has no phone number")
	ErrSMSDeliveryFailed = errors.New("failed to deliver notification")
)

type AdminBookingUsecase interface {
	ListBookings(ctx context.Context, status, fromDate, toDate string) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, adminID string, bookingID uuid.UUID, req *dto.UpdateBookingRequest) (*dto.UpdateBookingResponse, error)
	SendNotification(ctx context.Context, adminID string, bookingID uuid.UUID, req *dto.NotifyBookingRequest) (*dto.NotifyBookingResponse, error)
	AddComment(ctx context.Context, adminID string, bookingID uuid.UUID, req *dto.AddCommentRequest) (*dto.BookingUpdateResponse, error)
	GetUpdates(ctx context.Context, bookingID uuid.UUID) (*dto.BookingUpdateListResponse, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type adminBookingUsecase struct {
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	updateRepo   repository.BookingUpdateRepository
	notifService *service.NotificationService
}

func NewAdminBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	updateRepo repository.BookingUpdateRepository,
	notifService *service.NotificationService,
) AdminBookingUsecase {
	return &adminBookingUsecase{
		log:          log,
		bookingRepo:  bookingRepo,
		updateRepo:   updateRepo,
		notifService: notifService,
	}
}

// ListBookings returns all bookings, optionally narrowed by status and
// preferred-date range. Unparseable dates are ignored rather than rejected.
func (u *adminBookingUsecase) ListBookings(ctx context.Context, status, fromDate, toDate string) (*dto.BookingListResponse, error) {
	filter := repository.BookingFilter{}

	if status != "" {
		if !entity.IsValidBookingStatus(status) {
			return nil, ErrInvalidStatus
		}
		filter.Status = entity.BookingStatus(status)
	}
	if fromDate != "" {
		if t, err := parseFlexibleDate(fromDate); err == nil {
			filter.FromDate = &t
		}
	}
	if toDate != "" {
		if t, err := parseFlexibleDate(toDate); err == nil {
			filter.ToDate = &t
		}
	}

	bookings, err := u.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *adminBookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}

// UpdateBooking merges the supplied repair fields and status onto the
// booking. A real status change appends a STATUS_CHANGE record and, when the
// customer opted in and left a phone number, dispatches the templated SMS.
// The SMS is fire-and-forget: its failure never rolls back the update.
func (u *adminBookingUsecase) UpdateBooking(ctx context.Context, adminID string, bookingID uuid.UUID, req *dto.UpdateBookingRequest) (*dto.UpdateBookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	oldStatus := booking.Status
	statusChanged := req.Status != "" && entity.BookingStatus(req.Status) != oldStatus
	if statusChanged && booking.IsTerminal() {
		return nil, ErrBookingTerminal
	}

	if req.TotalPrice != nil && req.TotalPrice.LessThan(decimal.Zero) {
		return nil, ErrNegativeAmount
	}

	if req.PreferredDate != nil {
		t, err := parseFlexibleDate(*req.PreferredDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		booking.PreferredDate = t
	}
	if req.EstimatedCompletionDate != nil {
		t, err := parseFlexibleDate(*req.EstimatedCompletionDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		booking.EstimatedCompletionDate = &t
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	if req.PhoneNumber != nil {
		booking.PhoneNumber = *req.PhoneNumber
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = req.TotalPrice
	}
	if req.Diagnosis != nil {
		booking.Diagnosis = *req.Diagnosis
	}
	if req.PartsNeeded != nil {
		booking.PartsNeeded = *req.PartsNeeded
	}
	if req.LaborHours != nil {
		booking.LaborHours = req.LaborHours
	}
	if req.SMSOptIn != nil {
		booking.SMSOptIn = *req.SMSOptIn
	}

	if statusChanged {
		booking.Status = entity.BookingStatus(req.Status)
		if req.StatusReason != "" {
			prefix := fmt.Sprintf("[Status changed to %s] %s", booking.Status, req.StatusReason)
			if booking.Notes != "" {
				booking.Notes = booking.Notes + "\n" + prefix
			} else {
				booking.Notes = prefix
			}
		}
	}

	if err := u.bookingRepo.Update(ctx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", bookingID, err)
		return nil, err
	}

	resp := &dto.UpdateBookingResponse{}

	if statusChanged {
		newStatus := booking.Status
		update := &entity.BookingUpdate{
			BookingID: booking.ID,
			Type:      entity.UpdateTypeStatusChange,
			Content:   fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus),
			OldStatus: &oldStatus,
			NewStatus: &newStatus,
			CreatedBy: adminID,
			IsPublic:  true,
		}
		if err := u.updateRepo.Create(ctx, update); err != nil {
			// No cross-call transaction; the booking update stands.
			u.log.Warnf("Failed to append status-change record for booking %s: %+v", bookingID, err)
		}

		if booking.SMSOptIn && booking.PhoneNumber != "" {
			sent := u.notifService.DispatchStatusChange(ctx, booking, newStatus, req.StatusReason)
			resp.NotificationSent = &sent
		}

		u.log.Infof("Booking status changed: id=%s, %s -> %s", bookingID, oldStatus, newStatus)
	}

	resp.Booking = *converter.BookingToResponse(booking)
	return resp, nil
}

// SendNotification forwards a free-text message to the booking's phone
// number and records it in the activity trail.
func (u *adminBookingUsecase) SendNotification(ctx context.Context, adminID string, bookingID uuid.UUID, req *dto.NotifyBookingRequest) (*dto.NotifyBookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.PhoneNumber == "" {
		return nil, ErrNoPhoneNumber
	}

	messageID, err := u.notifService.DispatchCustom(ctx, booking, req.Message)
	if err != nil {
		return nil, ErrSMSDeliveryFailed
	}

	update := &entity.BookingUpdate{
		BookingID: booking.ID,
		Type:      entity.UpdateTypeNotification,
		Content:   req.Message,
		CreatedBy: adminID,
		IsPublic:  true,
	}
	if err := u.updateRepo.Create(ctx, update); err != nil {
		u.log.Warnf("Failed to record notification for booking %s: %+v", bookingID, err)
	}

	return &dto.NotifyBookingResponse{
		MessageID: messageID,
		Update:    *converter.BookingUpdateToResponse(update),
	}, nil
}

// AddComment appends an activity record without touching booking fields.
func (u *adminBookingUsecase) AddComment(ctx context.Context, adminID string, bookingID uuid.UUID, req *dto.AddCommentRequest) (*dto.BookingUpdateResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	updateType := entity.UpdateTypeComment
	if req.Type != "" {
		updateType = entity.BookingUpdateType(req.Type)
	}

	update := &entity.BookingUpdate{
		BookingID: booking.ID,
		Type:      updateType,
		Content:   req.Content,
		CreatedBy: adminID,
		IsPublic:  req.IsPublic,
	}
	if err := u.updateRepo.Create(ctx, update); err != nil {
		u.log.Warnf("Failed to add comment to booking %s: %+v", bookingID, err)
		return nil, err
	}

	return converter.BookingUpdateToResponse(update), nil
}

func (u *adminBookingUsecase) GetUpdates(ctx context.Context, bookingID uuid.UUID) (*dto.BookingUpdateListResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	updates, err := u.updateRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to load updates for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return &dto.BookingUpdateListResponse{
		Updates: converter.BookingUpdatesToResponses(updates),
		Total:   len(updates),
	}, nil
}

func (u *adminBookingUsecase) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if err := u.bookingRepo.Delete(ctx, bookingID); err != nil {
		u.log.Warnf("Failed to delete booking %s: %+v", bookingID, err)
		return err
	}

	u.log.Infof("Booking deleted: id=%s", bookingID)
	return nil
}
