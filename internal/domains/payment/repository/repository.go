package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/payment/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"

	"github.com/jmoiron/sqlx"
)

// insertQuery leaves id out so postgres assigns it from the sequence.
const insertQuery = `INSERT INTO payments
	(amount, payment_method, staff_id, item_id, item_type, created_at, created_by, modified_at, modified_by)
VALUES
	(:amount, :payment_method, :staff_id, :item_id, :item_type, :created_at, :created_by, :modified_at, :modified_by)`

type Payment interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, payment model.Payment) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".InsertTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	if _, err := sqltx.NamedExecContext(ctx, insertQuery, payment); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}
