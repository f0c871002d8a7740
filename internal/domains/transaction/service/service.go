package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/kafka"
	"nox/infras/otel"
	"nox/internal/domains/transaction/model"
	"nox/internal/domains/transaction/model/dto"
	"nox/internal/domains/transaction/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/rs/zerolog/log"
)

// Transaction exposes the money ledger. Rows are append-only; the only
// mutation is settling a pending row to completed or failed.
type Transaction interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (dto.TransactionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransactionsResponse, error)
	Get(ctx context.Context, id string) (dto.TransactionResponse, error)
	Settle(ctx context.Context, id string, req dto.SettleTransactionRequest) error
}

type serviceImpl struct {
	repo  repository.Transaction
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Transaction, cfg *config.Config, otel otel.Otel, kafkaClient kafka.Client) Transaction {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		kafka: kafkaClient,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTransactionRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	transaction := req.ToModel(user)

	if err = s.repo.Insert(ctx, transaction); err != nil {
		log.Error().Err(err).Msg("failed to insert transaction")

		return res, fmt.Errorf("failed to insert transaction: %w", err)
	}

	s.publish(ctx, transaction)

	res.FromModel(transaction)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	transaction, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transaction")

		return res, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	res.FromModel(transaction)

	return res, nil
}

// Settle resolves a pending transaction. A row already settled yields 409.
func (s *serviceImpl) Settle(ctx context.Context, id string, req dto.SettleTransactionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	transaction, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transaction")

		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	settled, err := s.repo.Settle(ctx, id, req.Status, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to settle transaction")

		return fmt.Errorf("failed to settle transaction: %w", err)
	}

	if !settled {
		return failure.Conflict("transaction is not pending") // nolint:wrapcheck
	}

	transaction.Status = req.Status
	s.publish(ctx, transaction)

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, transaction model.Transaction) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: transaction.ID, Value: transaction}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Transactions, message); err != nil {
			log.Error().Err(err).Msg("failed to publish transaction event")
		}
	}()
}
