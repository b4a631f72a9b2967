package dto

import (
	"lodge/internal/domains/record/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

type ServiceRecordResponse struct {
	ID      string  `json:"serviceRecordId"`
	GuestID string  `json:"guestId"`
	StaffID string  `json:"staffId"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
	Date    string  `json:"date"`
	gDto.Metadata
}

func (r *ServiceRecordResponse) FromModel(model model.ServiceRecord) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.StaffID = model.StaffID
	r.Amount = model.Amount
	r.Status = model.Status
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetServiceRecordsResponse struct {
	ServiceRecords []ServiceRecordResponse `json:"serviceRecords"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetServiceRecordsResponse) FromModels(models []model.ServiceRecord, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ServiceRecords = make([]ServiceRecordResponse, len(models))
	for i, mod := range models {
		r.ServiceRecords[i].FromModel(mod)
	}
}
