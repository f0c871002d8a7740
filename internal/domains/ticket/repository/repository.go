package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"nox/infras/otel"
	"nox/infras/postgres"
	"nox/internal/domains/ticket/model"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	gRepo "nox/shared/repository"
	"nox/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Ticket interface {
	Insert(ctx context.Context, model model.Ticket) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Ticket) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Ticket, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Ticket, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	TransitionTx(ctx context.Context, tx *sqlx.Tx, ticketID, from, to, modifiedBy string) (bool, error)
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Ticket]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Ticket](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return gRepo.Transact(ctx, repo.db, fn) //nolint:wrapcheck
}

// TransitionTx moves a ticket between statuses only when it currently holds
// the expected one.
func (repo *repositoryImpl) TransitionTx(ctx context.Context, tx *sqlx.Tx, ticketID, from, to, modifiedBy string) (bool, error) {
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
				Value:    ticketID,
				Table:    model.TableName,
			},
			gDto.Filter{
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
