package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/otel"
	"nox/internal/domains/artist/model"
	"nox/internal/domains/artist/model/dto"
	"nox/internal/domains/artist/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/rs/zerolog/log"
)

type Artist interface {
	Create(ctx context.Context, req dto.CreateArtistRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetArtistsResponse, error)
	Get(ctx context.Context, id string) (dto.ArtistResponse, error)
	Update(ctx context.Context, req dto.UpdateArtistRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Artist
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Artist, cfg *config.Config, otel otel.Otel) Artist {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateArtistRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create artist")

		return fmt.Errorf("failed to create artist: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetArtistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count artists")

		return res, fmt.Errorf("failed to count artists: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get artists")

		return res, fmt.Errorf("failed to get artists: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ArtistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	artist, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get artist")

		return res, fmt.Errorf("failed to get artist: %w", err)
	}

	if artist.ID == constant.Empty {
		return res, failure.NotFound("artist not found") // nolint:wrapcheck
	}

	res.FromModel(artist)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateArtistRequest, id string) (err error) {
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
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update artist")

		return fmt.Errorf("failed to update artist: %w", err)
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
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete artist")

		return fmt.Errorf("failed to delete artist: %w", err)
	}

	return nil
}
