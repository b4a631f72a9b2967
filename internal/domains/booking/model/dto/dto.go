package dto

import (
	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

type CreateBookingRequest struct {
	RoomNumber    string  `json:"roomNumber"    validate:"required,max=20"`
	GuestID       string  `json:"guestId"       validate:"required,max=20"`
	StaffID       string  `json:"staffId"       validate:"required,max=20"`
	Amount        float64 `json:"amount"        validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,max=50"`
}

type CheckoutRequest struct {
	BookingID  string `json:"bookingId"  validate:"required,uuid4"`
	RoomNumber string `json:"roomNumber" validate:"required,max=20"`
}

type CreateServiceRecordRequest struct {
	GuestID       string  `json:"guestId"       validate:"required,max=20"`
	StaffID       string  `json:"staffId"       validate:"required,max=20"`
	Amount        float64 `json:"amount"        validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,max=50"`
}

type BookingResponse struct {
	ID           string  `json:"bookingId"`
	GuestID      string  `json:"guestId"`
	StaffID      string  `json:"staffId"`
	RoomNumber   string  `json:"roomNumber"`
	Status       string  `json:"status"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.StaffID = model.StaffID
	r.RoomNumber = model.RoomID
	r.Status = model.Status
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)

	if model.CheckOutDate != nil {
		checkOut := model.CheckOutDate.Format(constant.DateOnlyFormat)
		r.CheckOutDate = &checkOut
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
