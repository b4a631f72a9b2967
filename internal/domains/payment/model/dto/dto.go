package dto

import (
	"lodge/internal/domains/payment/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
)

type PaymentResponse struct {
	ID            int     `json:"paymentId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	StaffID       string  `json:"staffId"`
	ItemID        string  `json:"itemId"`
	ItemType      string  `json:"itemType"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.StaffID = model.StaffID
	r.ItemID = model.ItemID
	r.ItemType = model.ItemType
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
