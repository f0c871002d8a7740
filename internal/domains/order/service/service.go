package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/kafka"
	"nox/infras/otel"
	"nox/internal/domains/order/model"
	"nox/internal/domains/order/model/dto"
	"nox/internal/domains/order/repository"
	postableModel "nox/internal/domains/postable/model"
	postableRepo "nox/internal/domains/postable/repository"
	transactionModel "nox/internal/domains/transaction/model"
	transactionRepo "nox/internal/domains/transaction/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
	Transition(ctx context.Context, id string, req dto.TransitionOrderRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Order
	posTableRepo    postableRepo.PosTable
	transactionRepo transactionRepo.Transaction
	cfg             *config.Config
	otel            otel.Otel
	kafka           kafka.Client
}

func New(
	repo repository.Order,
	posTableRepo postableRepo.PosTable,
	transactionRepo transactionRepo.Transaction,
	cfg *config.Config,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Order {
	return &serviceImpl{
		repo:            repo,
		posTableRepo:    posTableRepo,
		transactionRepo: transactionRepo,
		cfg:             cfg,
		otel:            otel,
		kafka:           kafkaClient,
	}
}

// Create opens an order on a floor table. The order, its items, and the table
// occupation commit together.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	table, err := s.posTableRepo.Get(ctx, shared.FilterByID(req.PosTableID, postableModel.FieldID, postableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pos table")

		return res, fmt.Errorf("failed to get pos table: %w", err)
	}

	if table.ID == constant.Empty {
		return res, failure.NotFound("pos table not found") // nolint:wrapcheck
	}

	if table.ClubID != req.ClubID {
		return res, failure.BadRequestFromString("pos table does not belong to the club")
	}

	if table.Status == postableModel.StatusCleaning {
		return res, failure.Conflict("table is being cleaned") // nolint:wrapcheck
	}

	order, items := req.ToModels(user)

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		if err := s.repo.InsertItemsTx(ctx, tx, items); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}

		// A table already occupied by another open order stays occupied; the
		// guard only fails when the table sits in a non-claimable state.
		if table.Status == postableModel.StatusAvailable || table.Status == postableModel.StatusReserved {
			if _, err := s.posTableRepo.TransitionTx(ctx, tx, table.ID, table.Status, postableModel.StatusOccupied, user); err != nil {
				return fmt.Errorf("failed to occupy pos table: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("pos_table_id", req.PosTableID).Msg("failed to create order")

		return res, err
	}

	s.publishStatusChange(ctx, order)

	res.FromModel(order)
	res.WithItems(items)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound("order not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModel(order)
	res.WithItems(items)

	return res, nil
}

// Transition moves an order along new → preparing → ready → completed, with
// new/preparing → cancelled. Completing a ready order appends an order_payment
// ledger row, and closing a table's last open order frees the table.
func (s *serviceImpl) Transition(ctx context.Context, id string, req dto.TransitionOrderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("order not found") // nolint:wrapcheck
	}

	if !model.CanTransition(order.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("order cannot move from %s to %s", order.Status, req.Status))
	}

	var payment *transactionModel.Transaction
	if req.Status == model.StatusCompleted {
		payment = s.paymentRow(user, order)
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		moved, err := s.repo.TransitionTx(ctx, tx, id, order.Status, req.Status, user)
		if err != nil {
			return fmt.Errorf("failed to transition order: %w", err)
		}

		if !moved {
			return failure.Conflict(fmt.Sprintf("order is no longer %s", order.Status)) // nolint:wrapcheck
		}

		if payment != nil {
			if err := s.transactionRepo.InsertTx(ctx, tx, *payment); err != nil {
				return fmt.Errorf("failed to insert payment transaction: %w", err)
			}
		}

		if req.Status == model.StatusCompleted || req.Status == model.StatusCancelled {
			if err := s.freeTableTx(ctx, tx, order, user); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("order_id", id).Str("status", req.Status).Msg("failed to transition order")

		return err
	}

	order.Status = req.Status
	s.publishStatusChange(ctx, order)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("order not found") // nolint:wrapcheck
	}

	if order.Status != model.StatusCompleted && order.Status != model.StatusCancelled {
		return failure.Conflict("open order must be completed or cancelled before deletion")
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteItemsTx(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		if err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete order")

		return err
	}

	return nil
}

// freeTableTx releases the table when the closing order was its last open one.
func (s *serviceImpl) freeTableTx(ctx context.Context, tx *sqlx.Tx, order model.Order, user string) error {
	open, err := s.repo.CountOpenForTableTx(ctx, tx, order.PosTableID, order.ID)
	if err != nil {
		return fmt.Errorf("failed to count open orders: %w", err)
	}

	if open > 0 {
		return nil
	}

	if _, err := s.posTableRepo.TransitionTx(ctx, tx, order.PosTableID, postableModel.StatusOccupied, postableModel.StatusAvailable, user); err != nil {
		return fmt.Errorf("failed to free pos table: %w", err)
	}

	return nil
}

func (s *serviceImpl) paymentRow(user string, order model.Order) *transactionModel.Transaction {
	return &transactionModel.Transaction{
		ID:        uuid.NewString(),
		UserID:    user,
		OrderID:   &order.ID,
		Amount:    order.Total,
		Type:      transactionModel.TypeOrderPayment,
		Status:    transactionModel.StatusCompleted,
		Reference: order.ID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (s *serviceImpl) publishStatusChange(ctx context.Context, order model.Order) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: order.ID, Value: order}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Orders, message); err != nil {
			log.Error().Err(err).Msg("failed to publish order status event")
		}
	}()
}
