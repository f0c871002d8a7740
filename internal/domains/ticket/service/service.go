package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/kafka"
	"nox/infras/otel"
	eventModel "nox/internal/domains/event/model"
	eventRepo "nox/internal/domains/event/repository"
	"nox/internal/domains/ticket/model"
	"nox/internal/domains/ticket/model/dto"
	"nox/internal/domains/ticket/repository"
	transactionModel "nox/internal/domains/transaction/model"
	transactionRepo "nox/internal/domains/transaction/repository"
	tickettypeModel "nox/internal/domains/tickettype/model"
	tickettypeRepo "nox/internal/domains/tickettype/repository"
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

type Ticket interface {
	Purchase(ctx context.Context, req dto.PurchaseTicketRequest) (dto.TicketResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTicketsResponse, error)
	Get(ctx context.Context, id string) (dto.TicketResponse, error)
	Use(ctx context.Context, id string) error
	Refund(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Ticket
	ticketTypeRepo  tickettypeRepo.TicketType
	eventRepo       eventRepo.Event
	transactionRepo transactionRepo.Transaction
	cfg             *config.Config
	otel            otel.Otel
	kafka           kafka.Client
}

func New(
	repo repository.Ticket,
	ticketTypeRepo tickettypeRepo.TicketType,
	eventRepo eventRepo.Event,
	transactionRepo transactionRepo.Transaction,
	cfg *config.Config,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Ticket {
	return &serviceImpl{
		repo:            repo,
		ticketTypeRepo:  ticketTypeRepo,
		eventRepo:       eventRepo,
		transactionRepo: transactionRepo,
		cfg:             cfg,
		otel:            otel,
		kafka:           kafkaClient,
	}
}

// Purchase sells one ticket. The sold-counter bump, the ticket insert, and the
// ledger row commit together; losing the capacity race yields 409 "sold out".
func (s *serviceImpl) Purchase(ctx context.Context, req dto.PurchaseTicketRequest) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Purchase")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(req.EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.NotFound("event not found") // nolint:wrapcheck
	}

	if event.Status == eventModel.StatusCancelled || event.Status == eventModel.StatusPast {
		return res, failure.Conflict(fmt.Sprintf("event is %s and cannot sell tickets", event.Status))
	}

	ticketType, err := s.ticketTypeRepo.Get(ctx, shared.FilterByID(req.TicketTypeID, tickettypeModel.FieldID, tickettypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket type")

		return res, fmt.Errorf("failed to get ticket type: %w", err)
	}

	if ticketType.ID == constant.Empty {
		return res, failure.NotFound("ticket type not found") // nolint:wrapcheck
	}

	if ticketType.EventID != req.EventID {
		return res, failure.BadRequestFromString("ticket type does not belong to the event")
	}

	ticket := req.ToModel(user, ticketType.Price)
	transaction := s.ledgerRow(user, ticket.ID, ticketType.Price)

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		sold, err := s.ticketTypeRepo.SellOneTx(ctx, tx, req.TicketTypeID, user)
		if err != nil {
			return fmt.Errorf("failed to claim ticket capacity: %w", err)
		}

		if !sold {
			return failure.Conflict("ticket type is sold out") // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, ticket); err != nil {
			return fmt.Errorf("failed to insert ticket: %w", err)
		}

		if err := s.transactionRepo.InsertTx(ctx, tx, transaction); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("ticket_type_id", req.TicketTypeID).Msg("failed to purchase ticket")

		return res, err
	}

	s.publishTransaction(ctx, transaction)

	res.FromModel(ticket)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTicketsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tickets")

		return res, fmt.Errorf("failed to count tickets: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tickets")

		return res, fmt.Errorf("failed to get tickets: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	ticket, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == constant.Empty {
		return res, failure.NotFound("ticket not found") // nolint:wrapcheck
	}

	res.FromModel(ticket)

	return res, nil
}

// Use marks a purchased ticket as consumed at the door.
func (s *serviceImpl) Use(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Use")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		moved, err := s.repo.TransitionTx(ctx, tx, id, model.StatusPurchased, model.StatusUsed, user)
		if err != nil {
			return fmt.Errorf("failed to use ticket: %w", err)
		}

		if !moved {
			return failure.Conflict("ticket is not in purchased status") // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("ticket_id", id).Msg("failed to use ticket")

		return err
	}

	return nil
}

// Refund returns the ticket to the pool and appends a refund ledger row, all
// in one transaction.
func (s *serviceImpl) Refund(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refund")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	ticket, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket")

		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == constant.Empty {
		return failure.NotFound("ticket not found") // nolint:wrapcheck
	}

	refund := transactionModel.Transaction{
		ID:        uuid.NewString(),
		UserID:    ticket.UserID,
		TicketID:  &ticket.ID,
		Amount:    -ticket.Price,
		Type:      transactionModel.TypeRefund,
		Status:    transactionModel.StatusCompleted,
		Reference: ticket.ID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		moved, err := s.repo.TransitionTx(ctx, tx, id, model.StatusPurchased, model.StatusRefunded, user)
		if err != nil {
			return fmt.Errorf("failed to refund ticket: %w", err)
		}

		if !moved {
			return failure.Conflict("only purchased tickets can be refunded") // nolint:wrapcheck
		}

		if err := s.ticketTypeRepo.ReturnOneTx(ctx, tx, ticket.TicketTypeID, user); err != nil {
			return fmt.Errorf("failed to return ticket capacity: %w", err)
		}

		if err := s.transactionRepo.InsertTx(ctx, tx, refund); err != nil {
			return fmt.Errorf("failed to insert refund transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("ticket_id", id).Msg("failed to refund ticket")

		return err
	}

	s.publishTransaction(ctx, refund)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	ticket, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket")

		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == constant.Empty {
		return failure.NotFound("ticket not found") // nolint:wrapcheck
	}

	if ticket.Status == model.StatusPurchased {
		return failure.Conflict("purchased ticket must be refunded before deletion")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete ticket")

		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ticket exists")

		return fmt.Errorf("failed to check if ticket exists: %w", err)
	}

	if !exist {
		return failure.NotFound("ticket not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ledgerRow(user, ticketID string, amount float64) transactionModel.Transaction {
	return transactionModel.Transaction{
		ID:        uuid.NewString(),
		UserID:    user,
		TicketID:  &ticketID,
		Amount:    amount,
		Type:      transactionModel.TypeTicketPurchase,
		Status:    transactionModel.StatusCompleted,
		Reference: ticketID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (s *serviceImpl) publishTransaction(ctx context.Context, transaction transactionModel.Transaction) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: transaction.ID, Value: transaction}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Transactions, message); err != nil {
			log.Error().Err(err).Msg("failed to publish transaction event")
		}
	}()
}
