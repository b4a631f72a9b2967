package service

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepository "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/dashboard/model/dto"
	roomModel "lodge/internal/domains/room/model"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"

	"github.com/rs/zerolog/log"
)

// Dashboard aggregates live counts for the front desk overview. Figures
// are read straight from the database on every request so they never lag
// behind a check-in or checkout.
type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	BookingCount(ctx context.Context) (dto.BookingCountResponse, error)
	RoomCounts(ctx context.Context) (dto.RoomCountsResponse, error)
	CheckInOutCounts(ctx context.Context) (dto.CheckInOutResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	roomRepo    roomRepository.Room
	otel        otel.Otel
}

func New(bookingRepo bookingRepository.Booking, roomRepo roomRepository.Room, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		otel:        otel,
	}
}

func statusFilter(field, value, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}

func (s *serviceImpl) BookingCount(ctx context.Context) (res dto.BookingCountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.bookingRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.BookingCount = total

	return res, nil
}

func (s *serviceImpl) RoomCounts(ctx context.Context) (res dto.RoomCountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	available, err := s.roomRepo.Count(ctx, statusFilter(roomModel.FieldStatus, roomModel.StatusAvailable, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count available rooms")

		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	res.TotalRooms = total
	res.AvailableRooms = available
	res.UnavailableRooms = total - available

	return res, nil
}

func (s *serviceImpl) CheckInOutCounts(ctx context.Context) (res dto.CheckInOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckInOutCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkedIn, err := s.bookingRepo.Count(ctx, statusFilter(bookingModel.FieldStatus, bookingModel.StatusCheckedIn, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count checked in bookings")

		return res, fmt.Errorf("failed to count checked in bookings: %w", err)
	}

	checkedOut, err := s.bookingRepo.Count(ctx, statusFilter(bookingModel.FieldStatus, bookingModel.StatusCheckedOut, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count checked out bookings")

		return res, fmt.Errorf("failed to count checked out bookings: %w", err)
	}

	res.CheckInCount = checkedIn
	res.CheckOutCount = checkedOut

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.BookingCount(ctx)
	if err != nil {
		return res, err
	}

	rooms, err := s.RoomCounts(ctx)
	if err != nil {
		return res, err
	}

	inOut, err := s.CheckInOutCounts(ctx)
	if err != nil {
		return res, err
	}

	res.BookingCountResponse = bookings
	res.RoomCountsResponse = rooms
	res.CheckInOutResponse = inOut

	return res, nil
}
