package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateRoomRequest struct {
	Type        string `json:"type"        validate:"required,oneof=Regular Deluxe"`
	Description string `json:"description" validate:"omitempty,max=255"`
	Status      string `json:"status"      validate:"omitempty,oneof=available occupied"`
}

func (c *CreateRoomRequest) ToModel(id, actor string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:          id,
		Type:        c.Type,
		Description: c.Description,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateRoomRequest struct {
	Type        string `db:"type"        json:"type"        validate:"omitempty,oneof=Regular Deluxe"`
	Description string `db:"description" json:"description" validate:"omitempty,max=255"`
	Status      string `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied"`
}

type RoomResponse struct {
	ID          string `json:"roomNumber"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Type = model.Type
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
