package model

import "lodge/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID      = "id"
	FieldName    = "name"
	FieldPrice   = "price"
	FieldStaffID = "staff_id"
)

type Service struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Price   float64 `db:"price"`
	StaffID string  `db:"staff_id"`
	model.Metadata
}
