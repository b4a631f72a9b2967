package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldType        = "type"
	FieldDescription = "description"
	FieldStatus      = "status"
)

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

const (
	TypeRegular = "Regular"
	TypeDeluxe  = "Deluxe"
)

type Room struct {
	ID          string `db:"id"`
	Type        string `db:"type"`
	Description string `db:"description"`
	Status      string `db:"status"`
	model.Metadata
}
