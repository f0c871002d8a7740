package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"nox/infras/otel"
	"nox/infras/postgres"
	"nox/internal/domains/reservation/model"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	gRepo "nox/shared/repository"
	"nox/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, reservationID, modifiedBy string) (bool, error)
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return gRepo.Transact(ctx, repo.db, fn) //nolint:wrapcheck
}

// ReleaseTx moves an active reservation to released. False means the
// reservation was not active (already released or never existed).
func (repo *repositoryImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, reservationID, modifiedBy string) (bool, error) {
	mod := map[string]any{
		model.FieldStatus:        model.StatusReleased,
		model.FieldReleasedAt:    timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusActive,
				Table:    model.TableName,
			},
		},
	}

	affected, err := repo.UpdateCountTx(ctx, tx, mod, filter)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
