package model

import "lodge/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID       = "id"
	FieldName     = "name"
	FieldGender   = "gender"
	FieldPosition = "position"
	FieldRole     = "role"
	FieldEmail    = "email"
	FieldPassword = "password"
)

type Staff struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Gender   string `db:"gender"`
	Position string `db:"position"`
	Role     string `db:"role"`
	Email    string `db:"email"`
	Password string `db:"password"`
	model.Metadata
}
