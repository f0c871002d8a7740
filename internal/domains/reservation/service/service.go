package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"nox/config"
	"nox/infras/otel"
	clubtableModel "nox/internal/domains/clubtable/model"
	clubtableRepo "nox/internal/domains/clubtable/repository"
	eventModel "nox/internal/domains/event/model"
	eventRepo "nox/internal/domains/event/repository"
	"nox/internal/domains/reservation/model"
	"nox/internal/domains/reservation/model/dto"
	"nox/internal/domains/reservation/repository"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Reserve(ctx context.Context, req dto.CreateReservationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Release(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	tableRepo clubtableRepo.ClubTable
	eventRepo eventRepo.Event
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Reservation, tableRepo clubtableRepo.ClubTable, eventRepo eventRepo.Event, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:      repo,
		tableRepo: tableRepo,
		eventRepo: eventRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

// Reserve commits a table to an event. The availability flip and the junction
// insert run in one transaction; losing the flip race yields a conflict, never
// a double booking.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.CreateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(req.EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return failure.NotFound("event not found") // nolint:wrapcheck
	}

	if event.Status == eventModel.StatusCancelled || event.Status == eventModel.StatusPast {
		return failure.Conflict(fmt.Sprintf("event is %s and cannot take reservations", event.Status))
	}

	table, err := s.tableRepo.Get(ctx, shared.FilterByID(req.TableID, clubtableModel.FieldID, clubtableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get club table")

		return fmt.Errorf("failed to get club table: %w", err)
	}

	if table.ID == constant.Empty {
		return failure.NotFound("club table not found") // nolint:wrapcheck
	}

	if table.ClubID != event.ClubID {
		return failure.BadRequestFromString("table does not belong to the event's club")
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		flipped, err := s.tableRepo.SetAvailabilityTx(ctx, tx, req.TableID, true, false, user)
		if err != nil {
			return fmt.Errorf("failed to claim table: %w", err)
		}

		if !flipped {
			return failure.Conflict("table is already reserved") // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, req.ToModel(user)); err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("table_id", req.TableID).Msg("failed to reserve table")

		return err
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

// Release ends an active reservation and frees its table atomically.
func (s *serviceImpl) Release(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		released, err := s.repo.ReleaseTx(ctx, tx, id, user)
		if err != nil {
			return fmt.Errorf("failed to release reservation: %w", err)
		}

		if !released {
			return failure.Conflict("reservation is not active") // nolint:wrapcheck
		}

		if _, err := s.tableRepo.SetAvailabilityTx(ctx, tx, reservation.TableID, false, true, user); err != nil {
			return fmt.Errorf("failed to free table: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("reservation_id", id).Msg("failed to release reservation")

		return err
	}

	return nil
}

// Delete removes a released reservation row. Active reservations must be
// released first so the table flag cannot be orphaned.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status == model.StatusActive {
		return failure.Conflict("active reservation must be released before deletion")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	return nil
}
