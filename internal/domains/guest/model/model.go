package model

import "lodge/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldGender    = "gender"
	FieldEmail     = "email"
)

type Guest struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Gender    string `db:"gender"`
	Email     string `db:"email"`
	model.Metadata
}
