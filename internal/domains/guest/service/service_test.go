package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "lodge/infras/otel/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	"lodge/shared/failure"
	"net/http"
)

func newGuestService(t *testing.T) (service.Guest, *guestMocks.MockGuest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := guestMocks.NewMockGuest(ctrl)

	return service.New(repo, otelMocks.NewOtel()), repo
}

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: "Budi",
		LastName:  "Santoso",
		Gender:    "male",
		Email:     "budi@example.com",
	}

	t.Run("first guest gets GUEST0001", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "GUEST0001", res.ID)
		assert.Equal(t, req.Email, res.Email)
	})

	t.Run("next id follows the greatest existing one", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Guest{{ID: "GUEST0009"}}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "GUEST0010", res.ID)
	})

	t.Run("duplicate email is rejected with a bad request", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestGuestService_Get(t *testing.T) {
	t.Run("missing guest maps to not found", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "GUEST0404")
		require.Error(t, err)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("existing guest is returned", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{
			ID:        "GUEST0001",
			FirstName: "Budi",
			LastName:  "Santoso",
			Gender:    "male",
			Email:     "budi@example.com",
		}, nil)

		res, err := svc.Get(context.Background(), "GUEST0001")
		require.NoError(t, err)

		assert.Equal(t, "GUEST0001", res.ID)
	})
}

func TestGuestService_Update(t *testing.T) {
	t.Run("empty update request is rejected", func(t *testing.T) {
		svc, _ := newGuestService(t)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{}, "GUEST0001")
		require.Error(t, err)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown guest maps to not found", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{FirstName: "Adi"}, "GUEST0404")
		require.Error(t, err)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("only provided fields reach the repository", func(t *testing.T) {
		svc, repo := newGuestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Adi", fields[model.FieldFirstName])
				assert.NotContains(t, fields, model.FieldEmail)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{FirstName: "Adi"}, "GUEST0001")
		assert.NoError(t, err)
	})
}
