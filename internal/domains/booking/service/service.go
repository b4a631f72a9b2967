package service

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepository "lodge/internal/domains/guest/repository"
	paymentModel "lodge/internal/domains/payment/model"
	paymentRepository "lodge/internal/domains/payment/repository"
	recordModel "lodge/internal/domains/record/model"
	recordDto "lodge/internal/domains/record/model/dto"
	recordRepository "lodge/internal/domains/record/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepository "lodge/internal/domains/room/repository"
	staffModel "lodge/internal/domains/staff/model"
	staffRepository "lodge/internal/domains/staff/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Checkout(ctx context.Context, req dto.CheckoutRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	CreateRecord(ctx context.Context, req dto.CreateServiceRecordRequest) (recordDto.ServiceRecordResponse, error)
	GetRecords(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (recordDto.GetServiceRecordsResponse, error)
}

type serviceImpl struct {
	transactor  postgres.Transactor
	bookingRepo repository.Booking
	roomRepo    roomRepository.Room
	guestRepo   guestRepository.Guest
	staffRepo   staffRepository.Staff
	paymentRepo paymentRepository.Payment
	recordRepo  recordRepository.ServiceRecord
	otel        otel.Otel
}

func New(
	transactor postgres.Transactor,
	bookingRepo repository.Booking,
	roomRepo roomRepository.Room,
	guestRepo guestRepository.Guest,
	staffRepo staffRepository.Staff,
	paymentRepo paymentRepository.Payment,
	recordRepo recordRepository.ServiceRecord,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		transactor:  transactor,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		staffRepo:   staffRepo,
		paymentRepo: paymentRepo,
		recordRepo:  recordRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) guestExists(ctx context.Context, guestID string) error {
	exist, err := s.guestRepo.Exist(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) staffExists(ctx context.Context, staffID string) error {
	exist, err := s.staffRepo.Exist(ctx, shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if !exist {
		return failure.NotFound("staff not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) roomExists(ctx context.Context, roomID string) error {
	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) setRoomStatusTx(ctx context.Context, sqltx *sqlx.Tx, roomID, status string) error {
	return s.roomRepo.UpdateTx(ctx, sqltx, map[string]any{ //nolint:wrapcheck
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemActor,
	}, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
}

// Create checks a guest into a room. The room flip to occupied, the
// booking row, and the payment row commit or roll back as one unit.
// Room availability is not a precondition; the front desk is the
// authority on whether a room can be sold.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.guestExists(ctx, req.GuestID); err != nil {
		return res, err
	}

	if err = s.staffExists(ctx, req.StaffID); err != nil {
		return res, err
	}

	if err = s.roomExists(ctx, req.RoomNumber); err != nil {
		return res, err
	}

	booking := model.Booking{
		ID:          uuid.NewString(),
		GuestID:     req.GuestID,
		StaffID:     req.StaffID,
		RoomID:      req.RoomNumber,
		Status:      model.StatusCheckedIn,
		CheckInDate: timezone.Today(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	payment := paymentModel.Payment{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		StaffID:       req.StaffID,
		ItemID:        booking.ID,
		ItemType:      paymentModel.ItemTypeBooking,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.setRoomStatusTx(ctx, tx, req.RoomNumber, roomModel.StatusOccupied); err != nil {
			return fmt.Errorf("failed to mark room occupied: %w", err)
		}

		if err := s.bookingRepo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if err := s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check in guest")

		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Checkout closes a booking and frees its room. Re-applying a checkout
// that already happened updates the same rows to the same state, so a
// retried request is harmless.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.roomExists(ctx, req.RoomNumber); err != nil {
		return res, err
	}

	checkOutDate := timezone.Today()

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		err := s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			model.FieldCheckOutDate:  checkOutDate,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: constant.SystemActor,
		}, shared.FilterByID(req.BookingID, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to close booking: %w", err)
		}

		if err := s.setRoomStatusTx(ctx, tx, req.RoomNumber, roomModel.StatusAvailable); err != nil {
			return fmt.Errorf("failed to free room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out guest")

		return res, err
	}

	booking.Status = model.StatusCheckedOut
	booking.CheckOutDate = &checkOutDate
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldCheckInDate
		req.SortDir = gDto.SortDirDesc
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.bookingRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// CreateRecord bills a guest for an extra service. The record and its
// payment commit or roll back together.
func (s *serviceImpl) CreateRecord(ctx context.Context, req dto.CreateServiceRecordRequest) (res recordDto.ServiceRecordResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRecord")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.guestExists(ctx, req.GuestID); err != nil {
		return res, err
	}

	if err = s.staffExists(ctx, req.StaffID); err != nil {
		return res, err
	}

	record := recordModel.ServiceRecord{
		ID:      uuid.NewString(),
		GuestID: req.GuestID,
		StaffID: req.StaffID,
		Amount:  req.Amount,
		Status:  recordModel.StatusPaid,
		Date:    timezone.Today(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	payment := paymentModel.Payment{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		StaffID:       req.StaffID,
		ItemID:        record.ID,
		ItemType:      paymentModel.ItemTypeServiceRecord,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.recordRepo.InsertTx(ctx, tx, record); err != nil {
			return fmt.Errorf("failed to create service record: %w", err)
		}

		if err := s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record service usage")

		return res, err
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) GetRecords(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res recordDto.GetServiceRecordsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecords")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = recordModel.FieldDate
		req.SortDir = gDto.SortDirDesc
	}

	total, err := s.recordRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service records")

		return res, fmt.Errorf("failed to count service records: %w", err)
	}

	models, err := s.recordRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service records")

		return res, fmt.Errorf("failed to get service records: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
