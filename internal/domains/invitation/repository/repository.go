package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"nox/infras/otel"
	"nox/infras/postgres"
	"nox/internal/domains/invitation/model"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	gRepo "nox/shared/repository"
	"nox/shared/timezone"
)

type Invitation interface {
	Insert(ctx context.Context, model model.Invitation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invitation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invitation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Respond(ctx context.Context, invitationID, status, modifiedBy string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invitation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Invitation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invitation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Respond resolves a pending invitation. False means someone else resolved it
// first.
func (repo *repositoryImpl) Respond(ctx context.Context, invitationID, status, modifiedBy string) (bool, error) {
	mod := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    invitationID,
				Table:    model.TableName,
			},
			gDto.Filter{
				// ArgName keeps the WHERE arg distinct from the SET column.
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}

	affected, err := repo.UpdateCount(ctx, mod, filter)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
