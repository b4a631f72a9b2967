package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "lodge/infras/otel/mocks"
	staffMocks "lodge/internal/domains/staff/mocks"
	"lodge/internal/domains/staff/model"
	"lodge/internal/domains/staff/model/dto"
	"lodge/internal/domains/staff/service"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/password"
	"lodge/shared/timezone"
)

func newStaffService(t *testing.T) (service.Staff, *staffMocks.MockStaff) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := staffMocks.NewMockStaff(ctrl)

	return service.New(repo, otelMocks.NewOtel()), repo
}

func hashedStaff(t *testing.T, plain string) model.Staff {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return model.Staff{
		ID:       "STAFF0001",
		Name:     "Ayu Lestari",
		Gender:   "female",
		Position: "Receptionist",
		Role:     "admin",
		Email:    "ayu@example.com",
		Password: hash,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestStaffService_Authenticate(t *testing.T) {
	staff := hashedStaff(t, "s3cret-pass")

	t.Run("valid credentials return the profile without the hash", func(t *testing.T) {
		svc, repo := newStaffService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)

		res, err := svc.Authenticate(context.Background(), dto.LoginRequest{
			StaffID:  staff.ID,
			Password: "s3cret-pass",
		})
		require.NoError(t, err)

		assert.Equal(t, staff.ID, res.ID)
		assert.Equal(t, staff.Email, res.Email)
	})

	t.Run("unknown id and wrong password are indistinguishable", func(t *testing.T) {
		svc, repo := newStaffService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)

		_, unknownErr := svc.Authenticate(context.Background(), dto.LoginRequest{
			StaffID:  "STAFF9999",
			Password: "s3cret-pass",
		})
		require.Error(t, unknownErr)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)

		_, wrongErr := svc.Authenticate(context.Background(), dto.LoginRequest{
			StaffID:  staff.ID,
			Password: "not-the-password",
		})
		require.Error(t, wrongErr)

		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
		assert.Equal(t, failure.GetCode(unknownErr), failure.GetCode(wrongErr))
	})
}

func TestStaffService_Create(t *testing.T) {
	req := dto.CreateStaffRequest{
		Name:     "Ayu Lestari",
		Gender:   "female",
		Position: "Receptionist",
		Role:     "admin",
		Email:    "ayu@example.com",
		Password: "s3cret-pass",
	}

	t.Run("stores a bcrypt hash, never the raw password", func(t *testing.T) {
		svc, repo := newStaffService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		var inserted model.Staff

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, staff model.Staff) error {
				inserted = staff

				return nil
			})

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "STAFF0001", inserted.ID)
		assert.NotEqual(t, req.Password, inserted.Password)
		assert.NoError(t, password.Verify(req.Password, inserted.Password))

		assert.Equal(t, inserted.ID, res.ID)
	})

	t.Run("assigns ids sequentially after the greatest existing one", func(t *testing.T) {
		svc, repo := newStaffService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Staff{{ID: "STAFF0041"}}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "STAFF0042", res.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, repo := newStaffService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})
}
