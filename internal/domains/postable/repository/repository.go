package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"nox/infras/otel"
	"nox/infras/postgres"
	"nox/internal/domains/postable/model"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	gRepo "nox/shared/repository"
	"nox/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type PosTable interface {
	Insert(ctx context.Context, model model.PosTable) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PosTable, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PosTable, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	TransitionTx(ctx context.Context, tx *sqlx.Tx, tableID, from, to, modifiedBy string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PosTable]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PosTable {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PosTable](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// TransitionTx moves a floor table between statuses only when it currently
// holds the expected one. False means another order changed it first.
func (repo *repositoryImpl) TransitionTx(ctx context.Context, tx *sqlx.Tx, tableID, from, to, modifiedBy string) (bool, error) {
	mod := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    tableID,
				Table:    model.TableName,
			},
			gDto.Filter{
				// ArgName keeps the WHERE arg distinct from the SET column.
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    from,
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
