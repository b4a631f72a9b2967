package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "lodge/infras/otel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	"lodge/shared/failure"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)

	return service.New(repo, otelMocks.NewOtel()), repo
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		Type:        "Deluxe",
		Description: "Sea view",
	}

	t.Run("first room gets ROOM001", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "ROOM001", res.ID)
		assert.Equal(t, model.StatusAvailable, res.Status, "rooms start out available unless told otherwise")
	})

	t.Run("room numbers use a three digit suffix", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{{ID: "ROOM099"}}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "ROOM100", res.ID)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		var inserted model.Room
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				inserted = room

				return nil
			})

		occupied := req
		occupied.Status = model.StatusOccupied

		_, err := svc.Create(context.Background(), occupied)
		require.NoError(t, err)

		assert.Equal(t, model.StatusOccupied, inserted.Status)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("unknown room returns not found", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "ROOM999")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("existing room is returned", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:     "ROOM101",
			Type:   "Regular",
			Status: model.StatusOccupied,
		}, nil)

		res, err := svc.Get(context.Background(), "ROOM101")
		require.NoError(t, err)

		assert.Equal(t, "ROOM101", res.ID)
		assert.Equal(t, model.StatusOccupied, res.Status)
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("empty request is rejected", func(t *testing.T) {
		svc, _ := newRoomService(t)

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{}, "ROOM101")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown room returns not found", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{Status: model.StatusAvailable}, "ROOM999")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("only populated fields are written", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		var fields map[string]any
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				fields = req

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{Status: model.StatusAvailable}, "ROOM101")
		require.NoError(t, err)

		assert.Equal(t, model.StatusAvailable, fields[model.FieldStatus])
		assert.NotContains(t, fields, model.FieldType)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("unknown room returns not found", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "ROOM999")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("existing room is deleted", func(t *testing.T) {
		svc, repo := newRoomService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "ROOM101")
		assert.NoError(t, err)
	})
}
