package invitation

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/invitation/model"
	"nox/internal/domains/invitation/model/dto"
	"nox/internal/domains/invitation/service"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invitation
	otel    otel.Otel
}

func New(service service.Invitation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invitations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInvitation)
		routerGroup.Get("/", handler.GetInvitations)
		routerGroup.Get("/{id}", handler.GetInvitationByID)
		routerGroup.Post("/{id}/respond", handler.RespondInvitation)
		routerGroup.Delete("/{id}", handler.DeleteInvitation)
	})
}

// CreateInvitation invites an artist to perform at a club.
// @Summary Create an invitation
// @Description Invite an artist to a club, optionally tied to an event. One pending invitation per club-artist pair.
// @Tags Invitation
// @Accept json
// @Produce json
// @Param request body dto.CreateInvitationRequest true "Create Invitation Request"
// @Success 201 {object} response.Message "Invitation created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invitations [post]
// @Security BearerAuth
func (handler *Handler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInvitation")
	defer scope.End()

	req := dto.CreateInvitationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create invitation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invitation created successfully")

	response.WithMessage(w, http.StatusCreated, "Invitation created successfully")
}

// GetInvitations retrieves all invitations based on query parameters.
// @Summary Get all invitations
// @Description Retrieve all invitations with optional filtering and pagination.
// @Tags Invitation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param club_id query string false "Filter by club"
// @Param artist_id query string false "Filter by artist"
// @Param event_id query string false "Filter by event"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetInvitationsResponse] "List of invitations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invitations [get]
// @Security BearerAuth
func (handler *Handler) GetInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvitations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldClubID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldClubID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldArtistID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldArtistID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldEventID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
		},
	}

	invitations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invitations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invitations retrieved successfully")

	response.WithJSON(w, http.StatusOK, invitations)
}

// GetInvitationByID retrieves an invitation by its ID.
// @Summary Get an invitation by ID
// @Description Retrieve an invitation by its unique identifier.
// @Tags Invitation
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} response.Data[dto.InvitationResponse] "Invitation details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invitations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInvitationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvitationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invitation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invitation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invitation retrieved successfully")

	response.WithJSON(w, http.StatusOK, invitation)
}

// RespondInvitation resolves a pending invitation.
// @Summary Respond to an invitation
// @Description Accept, decline, or withdraw a pending invitation. Already-resolved invitations fail with 409.
// @Tags Invitation
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID"
// @Param request body dto.RespondInvitationRequest true "Respond Invitation Request"
// @Success 200 {object} response.Message "Invitation responded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invitations/{id}/respond [post]
// @Security BearerAuth
func (handler *Handler) RespondInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RespondInvitation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RespondInvitationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Respond(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to respond to invitation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invitation responded successfully")

	response.WithMessage(w, http.StatusOK, "Invitation responded successfully")
}

// DeleteInvitation deletes an invitation by its ID.
// @Summary Delete an invitation by ID
// @Description Permanently remove an invitation.
// @Tags Invitation
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} response.Message "Invitation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invitations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInvitation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete invitation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invitation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Invitation deleted successfully")
}
