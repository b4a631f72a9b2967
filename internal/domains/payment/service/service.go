package service

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"

	"github.com/rs/zerolog/log"
)

// Payments are written only inside booking and service record
// transactions; this service is the read side.
type Payment interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo repository.Payment
	otel otel.Otel
}

func New(repo repository.Payment, otel otel.Otel) Payment {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
