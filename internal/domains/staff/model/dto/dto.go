package dto

import (
	"lodge/internal/domains/staff/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateStaffRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Gender   string `json:"gender"   validate:"required,max=10"`
	Position string `json:"position" validate:"required,max=100"`
	Role     string `json:"role"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ToModel expects hashedPassword, never the raw credential.
func (c *CreateStaffRequest) ToModel(id, hashedPassword, actor string) model.Staff {
	return model.Staff{
		ID:       id,
		Name:     c.Name,
		Gender:   c.Gender,
		Position: c.Position,
		Role:     c.Role,
		Email:    c.Email,
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateStaffRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Gender   string `db:"gender"   json:"gender"   validate:"omitempty,max=10"`
	Position string `db:"position" json:"position" validate:"omitempty,max=100"`
	Role     string `db:"role"     json:"role"     validate:"omitempty,max=50"`
	Email    string `db:"email"    json:"email"    validate:"omitempty,email,max=100"`
	Password string `db:"password" json:"password" validate:"omitempty,min=8,max=72"`
}

type LoginRequest struct {
	StaffID  string `json:"staffId"  validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
}

// StaffResponse never carries the password hash.
type StaffResponse struct {
	ID       string `json:"staffId"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Position string `json:"position"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Gender = model.Gender
	r.Position = model.Position
	r.Role = model.Role
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
