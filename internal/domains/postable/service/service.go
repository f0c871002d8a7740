package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/otel"
	"nox/internal/domains/postable/model"
	"nox/internal/domains/postable/model/dto"
	"nox/internal/domains/postable/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/rs/zerolog/log"
)

// Floor tables back the point-of-sale flow. Status moves through the order
// lifecycle; a manual patch stays possible for walk-ins and cleaning.
type PosTable interface {
	Create(ctx context.Context, req dto.CreatePosTableRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPosTablesResponse, error)
	Get(ctx context.Context, id string) (dto.PosTableResponse, error)
	Update(ctx context.Context, req dto.UpdatePosTableRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.PosTable
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.PosTable, cfg *config.Config, otel otel.Otel) PosTable {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePosTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldClubID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.ClubID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Number,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if pos table exists")

		return fmt.Errorf("failed to check if pos table exists: %w", err)
	}

	if duplicate {
		return failure.Conflict("table number already exists for this club") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create pos table")

		return fmt.Errorf("failed to create pos table: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPosTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pos tables")

		return res, fmt.Errorf("failed to count pos tables: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pos tables")

		return res, fmt.Errorf("failed to get pos tables: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PosTableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pos table")

		return res, fmt.Errorf("failed to get pos table: %w", err)
	}

	if table.ID == constant.Empty {
		return res, failure.NotFound("pos table not found") // nolint:wrapcheck
	}

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePosTableRequest, id string) (err error) {
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
		log.Error().Err(err).Msg("failed to check if pos table exists")

		return fmt.Errorf("failed to check if pos table exists: %w", err)
	}

	if !exist {
		return failure.NotFound("pos table not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update pos table")

		return fmt.Errorf("failed to update pos table: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pos table")

		return fmt.Errorf("failed to get pos table: %w", err)
	}

	if table.ID == constant.Empty {
		return failure.NotFound("pos table not found") // nolint:wrapcheck
	}

	if table.Status == model.StatusOccupied {
		return failure.Conflict("occupied table cannot be deleted") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete pos table")

		return fmt.Errorf("failed to delete pos table: %w", err)
	}

	return nil
}
