package model

import "lodge/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldStaffID       = "staff_id"
	FieldItemID        = "item_id"
	FieldItemType      = "item_type"

	ItemTypeBooking       = "booking"
	ItemTypeServiceRecord = "service_record"
)

// Payment rows reference either a booking or a service record; item_type
// names the table item_id points into.
type Payment struct {
	ID            int     `db:"id"`
	Amount        float64 `db:"amount"`
	PaymentMethod string  `db:"payment_method"`
	StaffID       string  `db:"staff_id"`
	ItemID        string  `db:"item_id"`
	ItemType      string  `db:"item_type"`
	model.Metadata
}
