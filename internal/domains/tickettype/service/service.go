package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/otel"
	"nox/internal/domains/tickettype/model"
	"nox/internal/domains/tickettype/model/dto"
	"nox/internal/domains/tickettype/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/rs/zerolog/log"
)

type TicketType interface {
	Create(ctx context.Context, req dto.CreateTicketTypeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTicketTypesResponse, error)
	Get(ctx context.Context, id string) (dto.TicketTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateTicketTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.TicketType
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.TicketType, cfg *config.Config, otel otel.Otel) TicketType {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTicketTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create ticket type")

		return fmt.Errorf("failed to create ticket type: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTicketTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ticket types")

		return res, fmt.Errorf("failed to count ticket types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket types")

		return res, fmt.Errorf("failed to get ticket types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TicketTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	ticketType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket type")

		return res, fmt.Errorf("failed to get ticket type: %w", err)
	}

	if ticketType.ID == constant.Empty {
		return res, failure.NotFound("ticket type not found") // nolint:wrapcheck
	}

	res.FromModel(ticketType)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTicketTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, user)
	if shared.IsEmptyPatch(updatedFields) {
		return failure.BadRequestFromString("empty update payload") // nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket type")

		return fmt.Errorf("failed to get ticket type: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("ticket type not found") // nolint:wrapcheck
	}

	if req.Capacity != nil && *req.Capacity < current.Sold {
		return failure.Conflict("capacity cannot be reduced below tickets already sold")
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update ticket type")

		return fmt.Errorf("failed to update ticket type: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket type")

		return fmt.Errorf("failed to get ticket type: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("ticket type not found") // nolint:wrapcheck
	}

	if current.Sold > 0 {
		return failure.Conflict("ticket type with sold tickets cannot be deleted")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete ticket type")

		return fmt.Errorf("failed to delete ticket type: %w", err)
	}

	return nil
}
