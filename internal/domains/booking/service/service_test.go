package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	txMocks "lodge/infras/postgres/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	guestMocks "lodge/internal/domains/guest/mocks"
	paymentMocks "lodge/internal/domains/payment/mocks"
	paymentModel "lodge/internal/domains/payment/model"
	recordMocks "lodge/internal/domains/record/mocks"
	recordModel "lodge/internal/domains/record/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	staffMocks "lodge/internal/domains/staff/mocks"
	otelMocks "lodge/infras/otel/mocks"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type bookingMocksBundle struct {
	transactor  *txMocks.MockTransactor
	bookingRepo *bookingMocks.MockBooking
	roomRepo    *roomMocks.MockRoom
	guestRepo   *guestMocks.MockGuest
	staffRepo   *staffMocks.MockStaff
	paymentRepo *paymentMocks.MockPayment
	recordRepo  *recordMocks.MockServiceRecord
}

func newBookingService(t *testing.T) (service.Booking, bookingMocksBundle) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bundle := bookingMocksBundle{
		transactor:  txMocks.NewMockTransactor(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		guestRepo:   guestMocks.NewMockGuest(ctrl),
		staffRepo:   staffMocks.NewMockStaff(ctrl),
		paymentRepo: paymentMocks.NewMockPayment(ctrl),
		recordRepo:  recordMocks.NewMockServiceRecord(ctrl),
	}

	svc := service.New(
		bundle.transactor,
		bundle.bookingRepo,
		bundle.roomRepo,
		bundle.guestRepo,
		bundle.staffRepo,
		bundle.paymentRepo,
		bundle.recordRepo,
		otelMocks.NewOtel(),
	)

	return svc, bundle
}

func passThroughTransaction(m *txMocks.MockTransactor) {
	m.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomNumber:    "ROOM001",
		GuestID:       "GUEST0001",
		StaffID:       "STAFF0001",
		Amount:        250,
		PaymentMethod: "cash",
	}

	t.Run("check-in writes room, booking and payment atomically", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.staffRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		passThroughTransaction(m.transactor)

		var insertedBooking model.Booking

		m.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])

				return nil
			})

		m.bookingRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				insertedBooking = booking

				return nil
			})

		m.paymentRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment paymentModel.Payment) error {
				assert.Equal(t, paymentModel.ItemTypeBooking, payment.ItemType)
				assert.Equal(t, insertedBooking.ID, payment.ItemID)
				assert.Equal(t, req.Amount, payment.Amount)

				return nil
			})

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, model.StatusCheckedIn, insertedBooking.Status)
		assert.Equal(t, req.RoomNumber, insertedBooking.RoomID)
		assert.NotEmpty(t, insertedBooking.ID)
		assert.Equal(t, insertedBooking.ID, res.ID)
		assert.Equal(t, model.StatusCheckedIn, res.Status)
	})

	t.Run("unknown guest aborts before the transaction", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("payment failure rolls the whole check-in back", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.staffRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		passThroughTransaction(m.transactor)

		m.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.bookingRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.paymentRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestBookingService_Checkout(t *testing.T) {
	req := dto.CheckoutRequest{
		BookingID:  "5f3a4c0e-8f27-4f0c-9b31-0f6746c6e1aa",
		RoomNumber: "ROOM001",
	}

	activeBooking := model.Booking{
		ID:          req.BookingID,
		GuestID:     "GUEST0001",
		StaffID:     "STAFF0001",
		RoomID:      req.RoomNumber,
		Status:      model.StatusCheckedIn,
		CheckInDate: timezone.Today(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	expectCheckoutWrites := func(t *testing.T, m bookingMocksBundle) {
		t.Helper()

		m.bookingRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
				assert.NotNil(t, fields[model.FieldCheckOutDate])

				return nil
			})

		m.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

				return nil
			})
	}

	t.Run("checkout closes the booking and frees the room", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeBooking, nil)
		m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		passThroughTransaction(m.transactor)
		expectCheckoutWrites(t, m)

		res, err := svc.Checkout(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, model.StatusCheckedOut, res.Status)
		require.NotNil(t, res.CheckOutDate)
	})

	t.Run("repeating a checkout re-applies the same state", func(t *testing.T) {
		svc, m := newBookingService(t)

		closed := activeBooking
		closed.Status = model.StatusCheckedOut
		checkOut := timezone.Today().Add(-24 * time.Hour)
		closed.CheckOutDate = &checkOut

		m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)
		m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		passThroughTransaction(m.transactor)
		expectCheckoutWrites(t, m)

		res, err := svc.Checkout(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, model.StatusCheckedOut, res.Status)
	})

	t.Run("unknown booking yields an error before any write", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Checkout(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("room update failure aborts the checkout", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeBooking, nil)
		m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		passThroughTransaction(m.transactor)

		m.bookingRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("update failed"))

		_, err := svc.Checkout(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestBookingService_CreateRecord(t *testing.T) {
	req := dto.CreateServiceRecordRequest{
		GuestID:       "GUEST0001",
		StaffID:       "STAFF0001",
		Amount:        45,
		PaymentMethod: "card",
	}

	t.Run("record and payment are written together", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.staffRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		passThroughTransaction(m.transactor)

		var insertedRecord recordModel.ServiceRecord

		m.recordRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, record recordModel.ServiceRecord) error {
				insertedRecord = record

				return nil
			})

		m.paymentRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment paymentModel.Payment) error {
				assert.Equal(t, paymentModel.ItemTypeServiceRecord, payment.ItemType)
				assert.Equal(t, insertedRecord.ID, payment.ItemID)

				return nil
			})

		res, err := svc.CreateRecord(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, recordModel.StatusPaid, insertedRecord.Status)
		assert.Equal(t, insertedRecord.ID, res.ID)
		assert.Equal(t, recordModel.StatusPaid, res.Status)
	})

	t.Run("record insert failure aborts the payment", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.staffRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		passThroughTransaction(m.transactor)

		m.recordRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := svc.CreateRecord(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestBookingService_Lifecycle(t *testing.T) {
	t.Run("a created booking can be checked out", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.staffRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		m.transactor.EXPECT().
			WithinTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			}).
			Times(2)

		var stored model.Booking

		m.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)
		m.bookingRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				stored = booking

				return nil
			})
		m.paymentRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
				return stored, nil
			})
		m.bookingRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		created, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomNumber:    "ROOM001",
			GuestID:       "GUEST0001",
			StaffID:       "STAFF0001",
			Amount:        100,
			PaymentMethod: "cash",
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, created.Status)
		assert.Nil(t, created.CheckOutDate)

		closed, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
			BookingID:  created.ID,
			RoomNumber: "ROOM001",
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, closed.ID)
		assert.Equal(t, model.StatusCheckedOut, closed.Status)
		require.NotNil(t, closed.CheckOutDate)
	})
}
