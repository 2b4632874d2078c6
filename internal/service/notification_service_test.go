package service

import (
	"context"
	"io"
	"testing"

	"repairshop-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, phoneNumber, body string) (string, error) {
	args := m.Called(ctx, phoneNumber, body)
	return args.String(0), args.Error(1)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStatusMessage_Templates(t *testing.T) {
	cases := []struct {
		status  entity.BookingStatus
		message string
	}{
		{entity.BookingStatusPending, "Your booking is pending."},
		{entity.BookingStatusConfirmed, "Your booking has been confirmed."},
		{entity.BookingStatusInProgress, "Your vehicle repair is now in progress."},
		{entity.BookingStatusCompleted, "Your vehicle repair has been completed and is ready for pickup."},
		{entity.BookingStatusCancelled, "Your booking has been cancelled."},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.message, StatusMessage(tc.status, ""), "status %s", tc.status)
	}
}

func TestStatusMessage_ReasonAppended(t *testing.T) {
	msg := StatusMessage(entity.BookingStatusCancelled, "No parts available")
	assert.Equal(t, "Your booking has been cancelled. No parts available", msg)
}

func TestDispatchStatusChange_SkipsWithoutOptIn(t *testing.T) {
	sender := new(mockSender)
	svc := NewNotificationService(sender, testLogger())

	booking := &entity.Booking{ID: uuid.New(), PhoneNumber: "+15551234567", SMSOptIn: false}
	sent := svc.DispatchStatusChange(context.Background(), booking, entity.BookingStatusConfirmed, "")

	assert.False(t, sent)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchStatusChange_SkipsWithoutPhone(t *testing.T) {
	sender := new(mockSender)
	svc := NewNotificationService(sender, testLogger())

	booking := &entity.Booking{ID: uuid.New(), PhoneNumber: "", SMSOptIn: true}
	sent := svc.DispatchStatusChange(context.Background(), booking, entity.BookingStatusConfirmed, "")

	assert.False(t, sent)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchStatusChange_SendsTemplatedBody(t *testing.T) {
	sender := new(mockSender)
	svc := NewNotificationService(sender, testLogger())

	booking := &entity.Booking{ID: uuid.New(), PhoneNumber: "+15551234567", SMSOptIn: true}
	sender.On("Send", mock.Anything, "+15551234567", "Your vehicle repair is now in progress.").Return("msg-1", nil)

	sent := svc.DispatchStatusChange(context.Background(), booking, entity.BookingStatusInProgress, "")

	assert.True(t, sent)
	sender.AssertExpectations(t)
}

func TestDispatchStatusChange_DeliveryFailureSwallowed(t *testing.T) {
	sender := new(mockSender)
	svc := NewNotificationService(sender, testLogger())

	booking := &entity.Booking{ID: uuid.New(), PhoneNumber: "+15551234567", SMSOptIn: true}
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)

	sent := svc.DispatchStatusChange(context.Background(), booking, entity.BookingStatusConfirmed, "")

	assert.False(t, sent)
}

func TestDispatchCustom_ForwardsVerbatim(t *testing.T) {
	sender := new(mockSender)
	svc := NewNotificationService(sender, testLogger())

	booking := &entity.Booking{ID: uuid.New(), PhoneNumber: "+15551234567"}
	sender.On("Send", mock.Anything, "+15551234567", "Your parts arrived").Return("msg-2", nil)

	messageID, err := svc.DispatchCustom(context.Background(), booking, "Your parts arrived")

	assert.NoError(t, err)
	assert.Equal(t, "msg-2", messageID)
}
