package model

import (
	"lodge/shared/model"
	"time"
)

const (
	TableName  = "service_records"
	EntityName = "service_record"

	FieldID      = "id"
	FieldGuestID = "guest_id"
	FieldStaffID = "staff_id"
	FieldAmount  = "amount"
	FieldStatus  = "status"
	FieldDate    = "date"

	StatusPaid = "paid"
)

type ServiceRecord struct {
	ID      string    `db:"id"`
	GuestID string    `db:"guest_id"`
	StaffID string    `db:"staff_id"`
	Amount  float64   `db:"amount"`
	Status  string    `db:"status"`
	Date    time.Time `db:"date"`
	model.Metadata
}
