package model

import (
	"lodge/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldGuestID      = "guest_id"
	FieldStaffID      = "staff_id"
	FieldRoomID       = "room_id"
	FieldStatus       = "status"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"

	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

type Booking struct {
	ID           string     `db:"id"`
	GuestID      string     `db:"guest_id"`
	StaffID      string     `db:"staff_id"`
	RoomID       string     `db:"room_id"`
	Status       string     `db:"status"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	model.Metadata
}
