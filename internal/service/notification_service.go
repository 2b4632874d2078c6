package service

import (
	"context"

	"repairshop-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// statusMessages maps a new booking status to the customer-facing SMS body.
var statusMessages = map[entity.BookingStatus]string{
	entity.BookingStatusPending:    "Your booking is pending.",
	entity.BookingStatusConfirmed:  "Your booking has been confirmed.",
	entity.BookingStatusInProgress: "Your vehicle repair is now in progress.",
	entity.BookingStatusCompleted:  "Your vehicle repair has been completed and is ready for pickup.",
	entity.BookingStatusCancelled:  "Your booking has been cancelled.",
}

// StatusMessage returns the templated message for a status, with the
// optional admin-supplied reason appended.
func StatusMessage(status entity.BookingStatus, reason string) string {
	msg := statusMessages[status]
	if reason != "" {
		msg = msg + " " + reason
	}
	return msg
}

// NotificationService is the notification dispatcher: it forwards messages
// to the SMS collaborator and logs failures without propagating them. The
// booking mutation that triggered a dispatch never rolls back on delivery
// failure.
type NotificationService struct {
	sender SMSSender
	log    *logrus.Logger
}

func NewNotificationService(sender SMSSender, log *logrus.Logger) *NotificationService {
	return &NotificationService{sender: sender, log: log}
}

// DispatchStatusChange sends the templated message for a status transition.
// Returns true when the message was handed to the provider.
func (s *NotificationService) DispatchStatusChange(ctx context.Context, booking *entity.Booking, newStatus entity.BookingStatus, reason string) bool {
	if !booking.SMSOptIn || booking.PhoneNumber == "" {
		return false
	}

	body := StatusMessage(newStatus, reason)
	if _, err := s.sender.Send(ctx, booking.PhoneNumber, body); err != nil {
		s.log.WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"status":     newStatus,
		}).Warnf("Failed to send status notification: %+v", err)
		return false
	}
	return true
}

// DispatchCustom forwards a free-text message verbatim. The caller is
// responsible for ensuring the booking has a phone number.
func (s *NotificationService) DispatchCustom(ctx context.Context, booking *entity.Booking, message string) (string, error) {
	messageID, err := s.sender.Send(ctx, booking.PhoneNumber, message)
	if err != nil {
		s.log.WithField("booking_id", booking.ID).Warnf("Failed to send custom notification: %+v", err)
		return "", err
	}
	return messageID, nil
}
