package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/otel"
	eventModel "nox/internal/domains/event/model"
	eventRepo "nox/internal/domains/event/repository"
	"nox/internal/domains/feedback/model"
	"nox/internal/domains/feedback/model/dto"
	"nox/internal/domains/feedback/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/rs/zerolog/log"
)

type Feedback interface {
	Create(ctx context.Context, req dto.CreateFeedbackRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFeedbackResponse, error)
	Get(ctx context.Context, id string) (dto.FeedbackResponse, error)
	Update(ctx context.Context, req dto.UpdateFeedbackRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Feedback
	eventRepo eventRepo.Event
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Feedback, eventRepo eventRepo.Event, cfg *config.Config, otel otel.Otel) Feedback {
	return &serviceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFeedbackRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.eventRepo.Exist(ctx, shared.FilterByID(req.EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exist {
		return failure.NotFound("event not found") // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.EventID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if feedback exists")

		return fmt.Errorf("failed to check if feedback exists: %w", err)
	}

	if duplicate {
		return failure.Conflict("feedback already submitted for this event") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create feedback")

		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count feedback")

		return res, fmt.Errorf("failed to count feedback: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get feedback")

		return res, fmt.Errorf("failed to get feedback: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	feedback, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get feedback")

		return res, fmt.Errorf("failed to get feedback: %w", err)
	}

	if feedback.ID == constant.Empty {
		return res, failure.NotFound("feedback not found") // nolint:wrapcheck
	}

	res.FromModel(feedback)

	return res, nil
}

// Update lets the author adjust rating or comment. Photos are immutable once
// submitted; resubmit the feedback to change them.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFeedbackRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, user)
	if shared.IsEmptyPatch(updatedFields) {
		return failure.BadRequestFromString("empty update payload") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if feedback exists")

		return fmt.Errorf("failed to check if feedback exists: %w", err)
	}

	if !exist {
		return failure.NotFound("feedback not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update feedback")

		return fmt.Errorf("failed to update feedback: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if feedback exists")

		return fmt.Errorf("failed to check if feedback exists: %w", err)
	}

	if !exist {
		return failure.NotFound("feedback not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete feedback")

		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	return nil
}
