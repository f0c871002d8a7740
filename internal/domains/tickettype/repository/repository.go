package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/infras/otel"
	"nox/infras/postgres"
	"nox/internal/domains/tickettype/model"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/logger"
	gRepo "nox/shared/repository"
	"nox/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type TicketType interface {
	Insert(ctx context.Context, model model.TicketType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TicketType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TicketType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SellOneTx(ctx context.Context, tx *sqlx.Tx, ticketTypeID, modifiedBy string) (bool, error)
	ReturnOneTx(ctx context.Context, tx *sqlx.Tx, ticketTypeID, modifiedBy string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.TicketType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) TicketType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TicketType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SellOneTx bumps the sold counter only while capacity remains. Zero affected
// rows means the type is sold out.
func (repo *repositoryImpl) SellOneTx(ctx context.Context, tx *sqlx.Tx, ticketTypeID, modifiedBy string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ticket_type.SellOneTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET sold = sold + 1, modified_at = :modified_at, modified_by = :modified_by WHERE id = :id AND sold < capacity",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"id":          ticketTypeID,
		"modified_at": timezone.Now(),
		"modified_by": modifiedBy,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to sell ticket (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

// ReturnOneTx hands a sold ticket back to the pool on refund.
func (repo *repositoryImpl) ReturnOneTx(ctx context.Context, tx *sqlx.Tx, ticketTypeID, modifiedBy string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ticket_type.ReturnOneTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET sold = sold - 1, modified_at = :modified_at, modified_by = :modified_by WHERE id = :id AND sold > 0",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := tx.NamedExecContext(ctx, query, map[string]any{
		"id":          ticketTypeID,
		"modified_at": timezone.Now(),
		"modified_by": modifiedBy,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to return ticket (%s): %w", model.EntityName, err)
	}

	return nil
}
