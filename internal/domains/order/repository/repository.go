package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/infras/otel"
	"nox/infras/postgres"
	"nox/internal/domains/order/model"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/logger"
	gRepo "nox/shared/repository"
	"nox/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Order interface {
	Insert(ctx context.Context, model model.Order) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	TransitionTx(ctx context.Context, tx *sqlx.Tx, orderID, from, to, modifiedBy string) (bool, error)
	CountOpenForTableTx(ctx context.Context, tx *sqlx.Tx, posTableID, excludeOrderID string) (int, error)
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.OrderItem) error
	GetItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	items gRepo.Repository[model.OrderItem]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return gRepo.Transact(ctx, repo.db, fn) //nolint:wrapcheck
}

// TransitionTx moves an order between statuses only when it currently holds
// the expected one. False means the order already left that status.
func (repo *repositoryImpl) TransitionTx(ctx context.Context, tx *sqlx.Tx, orderID, from, to, modifiedBy string) (bool, error) {
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
				Value:    orderID,
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

// CountOpenForTableTx counts the table's other orders that still hold it. The
// read runs on the transaction so the verdict and the transition commit
// together.
func (repo *repositoryImpl) CountOpenForTableTx(ctx context.Context, tx *sqlx.Tx, posTableID, excludeOrderID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.CountOpenForTableTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COUNT(id) FROM %s WHERE pos_table_id = :pos_table_id AND id != :exclude_id AND status IN ('%s', '%s', '%s')",
		model.TableName, model.StatusNew, model.StatusPreparing, model.StatusReady,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := sqlx.NamedQueryContext(ctx, tx, query, map[string]any{
		"pos_table_id": posTableID,
		"exclude_id":   excludeOrderID,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count open orders (%s): %w", model.EntityName, err)
	}
	defer rows.Close()

	count := 0
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return 0, fmt.Errorf("failed to scan open order count (%s): %w", model.EntityName, err)
		}
	}

	return count, nil
}

func (repo *repositoryImpl) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.OrderItem) error {
	return repo.items.InsertBulkTx(ctx, tx, items) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemOrderID,
				Operator: gDto.FilterOperatorEq,
				Value:    orderID,
				Table:    model.ItemTableName,
			},
		},
	}

	return repo.items.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemOrderID,
				Operator: gDto.FilterOperatorEq,
				Value:    orderID,
				Table:    model.ItemTableName,
			},
		},
	}

	return repo.items.DeleteTx(ctx, tx, filter) //nolint:wrapcheck
}
