package service

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/internal/domains/staff/model"
	"lodge/internal/domains/staff/model/dto"
	"lodge/internal/domains/staff/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/password"
	"lodge/shared/sequence"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid staff id or password"

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.StaffResponse, error)
}

type serviceImpl struct {
	repo repository.Staff
	otel otel.Otel
}

func New(repo repository.Staff, otel otel.Otel) Staff {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) nextID(ctx context.Context) (string, error) {
	last, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Limit:   1,
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirDesc,
	}, gDto.FilterGroup{}, model.FieldID)
	if err != nil {
		return "", fmt.Errorf("failed to get last staff id: %w", err)
	}

	lastID := constant.Empty
	if len(last) > 0 {
		lastID = last[0].ID
	}

	return sequence.Next(sequence.StaffPrefix, sequence.DefaultWidth, lastID) //nolint:wrapcheck
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return res, fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already registered") //nolint:wrapcheck
	}

	id, err := s.nextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate staff id")

		return res, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := req.ToModel(id, hashed, constant.SystemActor)

	if err = s.repo.Insert(ctx, staff); err != nil {
		log.Error().Err(err).Msg("failed to create staff")

		return res, fmt.Errorf("failed to create staff: %w", err)
	}

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("staff not found") //nolint:wrapcheck
	}

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateStaffRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if !exist {
		log.Error().Msg("staff not found")

		return failure.NotFound("staff not found") //nolint:wrapcheck
	}

	if req.Password != constant.Empty {
		hashed, err := password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return fmt.Errorf("failed to hash password: %w", err)
		}

		req.Password = hashed
	}

	updatedFields := shared.TransformFields(req, constant.SystemActor)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update staff")

		return fmt.Errorf("failed to update staff: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if !exist {
		log.Error().Msg("staff not found")

		return failure.NotFound("staff not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete staff")

		return fmt.Errorf("failed to delete staff: %w", err)
	}

	return nil
}

// Authenticate verifies credentials and returns the profile without the
// password hash. An unknown staff id and a wrong password produce the
// same failure so callers cannot probe which ids exist.
func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()

	staff, err := s.repo.Get(ctx, shared.FilterByID(req.StaffID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, staff.Password); err != nil {
		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	res.FromModel(staff)

	return res, nil
}
