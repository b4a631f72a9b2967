package dto

import (
	"lodge/internal/domains/service/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateServiceRequest struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Price   float64 `json:"price"   validate:"required,gt=0"`
	StaffID string  `json:"staffId" validate:"required,max=20"`
}

func (c *CreateServiceRequest) ToModel(id, actor string) model.Service {
	return model.Service{
		ID:      id,
		Name:    c.Name,
		Price:   c.Price,
		StaffID: c.StaffID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateServiceRequest struct {
	Name    string  `db:"name"     json:"name"    validate:"omitempty,max=100"`
	Price   float64 `db:"price"    json:"price"   validate:"omitempty,gt=0"`
	StaffID string  `db:"staff_id" json:"staffId" validate:"omitempty,max=20"`
}

type ServiceResponse struct {
	ID      string  `json:"serviceId"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	StaffID string  `json:"staffId"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.StaffID = model.StaffID
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
