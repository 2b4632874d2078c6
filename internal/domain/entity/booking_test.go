package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range AllBookingStatuses {
		assert.True(t, IsValidBookingStatus(string(s)))
	}
	assert.False(t, IsValidBookingStatus("DONE"))
	assert.False(t, IsValidBookingStatus("pending"))
	assert.False(t, IsValidBookingStatus(""))
}

func TestBooking_IsTerminal(t *testing.T) {
	cases := map[BookingStatus]bool{
		BookingStatusPending:    false,
		BookingStatusConfirmed:  false,
		BookingStatusInProgress: false,
		BookingStatusCompleted:  true,
		BookingStatusCancelled:  true,
	}

	for status, terminal := range cases {
		b := Booking{Status: status}
		assert.Equal(t, terminal, b.IsTerminal(), "status %s", status)
	}
}

func TestIsValidUpdateType(t *testing.T) {
	assert.True(t, IsValidUpdateType("COMMENT"))
	assert.True(t, IsValidUpdateType("STATUS_CHANGE"))
	assert.False(t, IsValidUpdateType("NOTE"))
}
