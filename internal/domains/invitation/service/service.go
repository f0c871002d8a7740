package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/otel"
	artistModel "nox/internal/domains/artist/model"
	artistRepo "nox/internal/domains/artist/repository"
	clubModel "nox/internal/domains/club/model"
	clubRepo "nox/internal/domains/club/repository"
	"nox/internal/domains/invitation/model"
	"nox/internal/domains/invitation/model/dto"
	"nox/internal/domains/invitation/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/rs/zerolog/log"
)

type Invitation interface {
	Create(ctx context.Context, req dto.CreateInvitationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvitationsResponse, error)
	Get(ctx context.Context, id string) (dto.InvitationResponse, error)
	Respond(ctx context.Context, id string, req dto.RespondInvitationRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Invitation
	clubRepo   clubRepo.Club
	artistRepo artistRepo.Artist
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Invitation,
	clubRepo clubRepo.Club,
	artistRepo artistRepo.Artist,
	cfg *config.Config,
	otel otel.Otel,
) Invitation {
	return &serviceImpl{
		repo:       repo,
		clubRepo:   clubRepo,
		artistRepo: artistRepo,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInvitationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.clubRepo.Exist(ctx, shared.FilterByID(req.ClubID, clubModel.FieldID, clubModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if club exists")

		return fmt.Errorf("failed to check if club exists: %w", err)
	}

	if !exist {
		return failure.NotFound("club not found") // nolint:wrapcheck
	}

	exist, err = s.artistRepo.Exist(ctx, shared.FilterByID(req.ArtistID, artistModel.FieldID, artistModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") // nolint:wrapcheck
	}

	pending, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldClubID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.ClubID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldArtistID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.ArtistID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if invitation exists")

		return fmt.Errorf("failed to check if invitation exists: %w", err)
	}

	if pending {
		return failure.Conflict("a pending invitation for this artist already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create invitation")

		return fmt.Errorf("failed to create invitation: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvitationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invitations")

		return res, fmt.Errorf("failed to count invitations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invitations")

		return res, fmt.Errorf("failed to get invitations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvitationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	invitation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invitation")

		return res, fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation.ID == constant.Empty {
		return res, failure.NotFound("invitation not found") // nolint:wrapcheck
	}

	res.FromModel(invitation)

	return res, nil
}

// Respond resolves a pending invitation. Artists accept or decline; the club
// side withdraws. A resolved invitation stays resolved.
func (s *serviceImpl) Respond(ctx context.Context, id string, req dto.RespondInvitationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Respond")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if req.Status == model.StatusWithdrawn && role != constant.RoleClubOwner && role != constant.RoleAdmin {
		return failure.Forbidden("only the inviting club can withdraw an invitation") // nolint:wrapcheck
	}

	if (req.Status == model.StatusAccepted || req.Status == model.StatusDeclined) &&
		role != constant.RoleArtist && role != constant.RoleAdmin {
		return failure.Forbidden("only the invited artist can accept or decline") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if invitation exists")

		return fmt.Errorf("failed to check if invitation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("invitation not found") // nolint:wrapcheck
	}

	resolved, err := s.repo.Respond(ctx, id, req.Status, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to respond to invitation")

		return fmt.Errorf("failed to respond to invitation: %w", err)
	}

	if !resolved {
		return failure.Conflict("invitation is no longer pending") // nolint:wrapcheck
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
		log.Error().Err(err).Msg("failed to check if invitation exists")

		return fmt.Errorf("failed to check if invitation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("invitation not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete invitation")

		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}
