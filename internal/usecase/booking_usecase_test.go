package usecase

import (
	"context"
	"io"
	"regexp"
	"testing"

	"repairshop-backend/config"
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"
	"repairshop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newBookingUsecaseForTest() (BookingUsecase, *MockBookingRepository, *MockCarRepository, *MockBookingUpdateRepository, *MockSMSSender) {
	log := testLogger()
	bookingRepo := new(MockBookingRepository)
	carRepo := new(MockCarRepository)
	updateRepo := new(MockBookingUpdateRepository)
	sender := new(MockSMSSender)
	notifService := service.NewNotificationService(sender, log)

	cfg := config.BookingConfig{
		ReferencePrefix:  "REP",
		MinIssueDescLen:  5,
		ReferenceRetries: 3,
	}

	uc := NewBookingUsecase(log, cfg, bookingRepo, carRepo, updateRepo, notifService)
	return uc, bookingRepo, carRepo, updateRepo, sender
}

func validCreateRequest(carID uuid.UUID) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		CarID:         carID.String(),
		IssueDesc:     "Brakes squeal at low speed",
		PreferredDate: "2026-09-15",
		PhoneNumber:   "+15551234567",
		Email:         "jane@example.com",
		FirstName:     "Jane",
		LastName:      "Doe",
		SMSOptIn:      true,
	}
}

func TestBookingUsecase_CreateBooking_Success(t *testing.T) {
	uc, bookingRepo, carRepo, _, _ := newBookingUsecaseForTest()

	carID := uuid.New()
	car := &entity.Car{ID: carID, UserID: "user-1", Make: "Toyota", Model: "Corolla", Year: 2019}

	carRepo.On("FindByID", mock.Anything, carID).Return(car, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	bookingRepo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil, nil) // reload miss falls back to the created record

	result, err := uc.CreateBooking(context.Background(), "user-1", validCreateRequest(carID))

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, string(entity.BookingStatusPending), result.Status)
	assert.Regexp(t, regexp.MustCompile(`^REP-[A-Z0-9]{5}$`), result.ReferenceNumber)
	bookingRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestBookingUsecase_CreateBooking_IssueDescTooShort(t *testing.T) {
	uc, bookingRepo, _, _, _ := newBookingUsecaseForTest()

	req := validCreateRequest(uuid.New())
	req.IssueDesc = "oil"

	result, err := uc.CreateBooking(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, ErrIssueDescTooShort)
	assert.Nil(t, result)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingUsecase_CreateBooking_InvalidDate(t *testing.T) {
	uc, bookingRepo, _, _, _ := newBookingUsecaseForTest()

	req := validCreateRequest(uuid.New())
	req.PreferredDate = "next tuesday"

	result, err := uc.CreateBooking(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.Nil(t, result)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingUsecase_CreateBooking_CarOwnedByOtherUser(t *testing.T) {
	uc, bookingRepo, carRepo, _, _ := newBookingUsecaseForTest()

	carID := uuid.New()
	car := &entity.Car{ID: carID, UserID: "someone-else"}
	carRepo.On("FindByID", mock.Anything, carID).Return(car, nil)

	result, err := uc.CreateBooking(context.Background(), "user-1", validCreateRequest(carID))

	assert.ErrorIs(t, err, ErrCarNotOwned)
	assert.Nil(t, result)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingUsecase_CreateBooking_CarNotFound(t *testing.T) {
	uc, _, carRepo, _, _ := newBookingUsecaseForTest()

	carID := uuid.New()
	carRepo.On("FindByID", mock.Anything, carID).Return(nil, nil)

	result, err := uc.CreateBooking(context.Background(), "user-1", validCreateRequest(carID))

	assert.ErrorIs(t, err, ErrCarNotFound)
	assert.Nil(t, result)
}

func TestBookingUsecase_CreateBooking_ReferenceCollisionRetries(t *testing.T) {
	uc, bookingRepo, carRepo, _, _ := newBookingUsecaseForTest()

	carID := uuid.New()
	car := &entity.Car{ID: carID, UserID: "user-1"}
	carRepo.On("FindByID", mock.Anything, carID).Return(car, nil)

	uniqueViolation := &pgconn.PgError{Code: "23505"}
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(uniqueViolation).Once()
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()
	bookingRepo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil, nil)

	result, err := uc.CreateBooking(context.Background(), "user-1", validCreateRequest(carID))

	assert.NoError(t, err)
	assert.NotNil(t, result)
	bookingRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestBookingUsecase_GetBooking_OwnerAndAdminAccess(t *testing.T) {
	uc, bookingRepo, _, _, _ := newBookingUsecaseForTest()

	bookingID := uuid.New()
	booking := &entity.Booking{ID: bookingID, UserID: "owner", Status: entity.BookingStatusPending}
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)

	// Owner sees it
	result, err := uc.GetBooking(context.Background(), "owner", false, bookingID)
	assert.NoError(t, err)
	assert.NotNil(t, result)

	// Stranger does not
	result, err = uc.GetBooking(context.Background(), "stranger", false, bookingID)
	assert.ErrorIs(t, err, ErrBookingNotOwned)
	assert.Nil(t, result)

	// Admin sees everything
	result, err = uc.GetBooking(context.Background(), "stranger", true, bookingID)
	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestBookingUsecase_GetRepairHistory_ExcludesPending(t *testing.T) {
	uc, bookingRepo, _, _, _ := newBookingUsecaseForTest()

	bookings := []entity.Booking{
		{ID: uuid.New(), UserID: "user-1", Status: entity.BookingStatusPending},
		{ID: uuid.New(), UserID: "user-1", Status: entity.BookingStatusCompleted},
		{ID: uuid.New(), UserID: "user-1", Status: entity.BookingStatusInProgress},
	}
	bookingRepo.On("FindByUserID", mock.Anything, "user-1").Return(bookings, nil)

	result, err := uc.GetRepairHistory(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	for _, b := range result.Bookings {
		assert.NotEqual(t, string(entity.BookingStatusPending), b.Status)
	}
}

func TestBookingUsecase_CancelBooking_Success(t *testing.T) {
	uc, bookingRepo, _, updateRepo, sender := newBookingUsecaseForTest()

	bookingID := uuid.New()
	booking := &entity.Booking{
		ID:          bookingID,
		UserID:      "user-1",
		Status:      entity.BookingStatusConfirmed,
		PhoneNumber: "+15551234567",
		SMSOptIn:    true,
	}

	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("Update", mock.Anything, booking).Return(nil)
	updateRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.BookingUpdate")).Return(nil)
	sender.On("Send", mock.Anything, "+15551234567", "Your booking has been cancelled.").Return("msg-1", nil)

	result, err := uc.CancelBooking(context.Background(), "user-1", bookingID)

	assert.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusCancelled), result.Status)
	updateRepo.AssertNumberOfCalls(t, "Create", 1)
	sender.AssertNumberOfCalls(t, "Send", 1)

	recorded := updateRepo.Calls[0].Arguments.Get(1).(*entity.BookingUpdate)
	assert.Equal(t, entity.UpdateTypeStatusChange, recorded.Type)
	assert.Equal(t, "Status changed from CONFIRMED to CANCELLED", recorded.Content)
	assert.True(t, recorded.IsPublic)
}

func TestBookingUsecase_CancelBooking_TerminalRejected(t *testing.T) {
	uc, bookingRepo, _, updateRepo, sender := newBookingUsecaseForTest()

	bookingID := uuid.New()
	booking := &entity.Booking{ID: bookingID, UserID: "user-1", Status: entity.BookingStatusCompleted}
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)

	result, err := uc.CancelBooking(context.Background(), "user-1", bookingID)

	assert.ErrorIs(t, err, ErrBookingTerminal)
	assert.Nil(t, result)
	bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	updateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingUsecase_CancelBooking_NotOwner(t *testing.T) {
	uc, bookingRepo, _, _, _ := newBookingUsecaseForTest()

	bookingID := uuid.New()
	booking := &entity.Booking{ID: bookingID, UserID: "someone-else", Status: entity.BookingStatusPending}
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)

	result, err := uc.CancelBooking(context.Background(), "user-1", bookingID)

	assert.ErrorIs(t, err, ErrBookingNotOwned)
	assert.Nil(t, result)
}

func TestBookingUsecase_LookupByReference_Match(t *testing.T) {
	uc, bookingRepo, _, _, _ := newBookingUsecaseForTest()

	booking := &entity.Booking{
		ID:              uuid.New(),
		ReferenceNumber: "REP-A1B2C",
		PhoneNumber:     "+15551234567",
		Status:          entity.BookingStatusConfirmed,
	}
	bookingRepo.On("FindByReferenceAndPhone", mock.Anything, "REP-A1B2C", "+15551234567").Return(booking, nil)

	result, err := uc.LookupByReference(context.Background(), "REP-A1B2C", "+15551234567")

	assert.NoError(t, err)
	assert.Equal(t, "REP-A1B2C", result.ReferenceNumber)
}

func TestBookingUsecase_LookupByReference_Mismatch(t *testing.T) {
	uc, bookingRepo, _, _, _ := newBookingUsecaseForTest()

	// Right reference, wrong phone: the repository finds nothing.
	bookingRepo.On("FindByReferenceAndPhone", mock.Anything, "REP-A1B2C", "+15550000000").Return(nil, nil)

	result, err := uc.LookupByReference(context.Background(), "REP-A1B2C", "+15550000000")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, result)
}
