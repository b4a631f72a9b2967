package dto_test

import (
	"testing"
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/shared/constant"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	bookingModel := model.Booking{
		ID:          "550e8400-e29b-41d4-a716-446655440000",
		GuestID:     "GUEST0001",
		StaffID:     "STAFF0001",
		RoomID:      "ROOM101",
		Status:      model.StatusCheckedIn,
		CheckInDate: checkIn,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "STAFF0001",
			ModifiedBy: "STAFF0001",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.GuestID, response.GuestID)
	assert.Equal(t, bookingModel.StaffID, response.StaffID)
	assert.Equal(t, bookingModel.RoomID, response.RoomNumber)
	assert.Equal(t, model.StatusCheckedIn, response.Status)
	assert.Equal(t, "2025-03-10", response.CheckInDate)
	assert.Nil(t, response.CheckOutDate, "expected open booking to have no check-out date")
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
}

func TestBookingResponse_FromModel_CheckedOut(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	bookingModel := model.Booking{
		ID:           "550e8400-e29b-41d4-a716-446655440000",
		GuestID:      "GUEST0001",
		StaffID:      "STAFF0001",
		RoomID:       "ROOM101",
		Status:       model.StatusCheckedOut,
		CheckInDate:  checkIn,
		CheckOutDate: &checkOut,
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, model.StatusCheckedOut, response.Status)
	if assert.NotNil(t, response.CheckOutDate) {
		assert.Equal(t, checkOut.Format(constant.DateOnlyFormat), *response.CheckOutDate)
	}
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		{
			ID:          "550e8400-e29b-41d4-a716-446655440000",
			GuestID:     "GUEST0001",
			StaffID:     "STAFF0001",
			RoomID:      "ROOM101",
			Status:      model.StatusCheckedIn,
			CheckInDate: checkIn,
		},
		{
			ID:          "6ba7b810-9dad-41d1-80b4-00c04fd430c8",
			GuestID:     "GUEST0002",
			StaffID:     "STAFF0001",
			RoomID:      "ROOM102",
			Status:      model.StatusCheckedIn,
			CheckInDate: checkIn,
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetBookingsResponse
	response.FromModels(bookings, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage) // 15 items with limit 10 should give 2 pages
	assert.Len(t, response.Bookings, len(bookings))

	for i, booking := range response.Bookings {
		assert.Equal(t, bookings[i].ID, booking.ID)
		assert.Equal(t, bookings[i].RoomID, booking.RoomNumber)
	}
}

func TestGetBookingsResponse_FromModels_EmptyList(t *testing.T) {
	var bookings []model.Booking

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 0, 10)

	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage) // Function returns 1 when total is 0
	assert.Len(t, response.Bookings, 0)
}
