package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/otel"
	"nox/internal/domains/clubtable/model"
	"nox/internal/domains/clubtable/model/dto"
	"nox/internal/domains/clubtable/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/rs/zerolog/log"
)

// Table availability is deliberately not cached and not patchable here: the
// flag is owned by the reservation transaction.
type ClubTable interface {
	Create(ctx context.Context, req dto.CreateClubTableRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClubTablesResponse, error)
	Get(ctx context.Context, id string) (dto.ClubTableResponse, error)
	Update(ctx context.Context, req dto.UpdateClubTableRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.ClubTable
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.ClubTable, cfg *config.Config, otel otel.Otel) ClubTable {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClubTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create club table")

		return fmt.Errorf("failed to create club table: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClubTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count club tables")

		return res, fmt.Errorf("failed to count club tables: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get club tables")

		return res, fmt.Errorf("failed to get club tables: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClubTableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get club table")

		return res, fmt.Errorf("failed to get club table: %w", err)
	}

	if table.ID == constant.Empty {
		return res, failure.NotFound("club table not found") // nolint:wrapcheck
	}

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClubTableRequest, id string) (err error) {
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
		log.Error().Err(err).Msg("failed to check if club table exists")

		return fmt.Errorf("failed to check if club table exists: %w", err)
	}

	if !exist {
		return failure.NotFound("club table not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update club table")

		return fmt.Errorf("failed to update club table: %w", err)
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
		log.Error().Err(err).Msg("failed to check if club table exists")

		return fmt.Errorf("failed to check if club table exists: %w", err)
	}

	if !exist {
		return failure.NotFound("club table not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete club table")

		return fmt.Errorf("failed to delete club table: %w", err)
	}

	return nil
}
