package dto

import (
	"lodge/internal/domains/guest/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateGuestRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	Gender    string `json:"gender"    validate:"required,max=10"`
	Email     string `json:"email"     validate:"required,email,max=100"`
}

func (c *CreateGuestRequest) ToModel(id, actor string) model.Guest {
	return model.Guest{
		ID:        id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Gender:    c.Gender,
		Email:     c.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName string `db:"first_name" json:"firstName" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"lastName"  validate:"omitempty,max=100"`
	Gender    string `db:"gender"     json:"gender"    validate:"omitempty,max=10"`
	Email     string `db:"email"      json:"email"     validate:"omitempty,email,max=100"`
}

type GuestResponse struct {
	ID        string `json:"guestId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Gender = model.Gender
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
