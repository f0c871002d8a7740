package tickettype

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/tickettype/model"
	"nox/internal/domains/tickettype/model/dto"
	"nox/internal/domains/tickettype/service"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.TicketType
	otel    otel.Otel
}

func New(service service.TicketType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ticket-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTicketType)
		routerGroup.Get("/", handler.GetTicketTypes)
		routerGroup.Get("/{id}", handler.GetTicketTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateTicketType)
		routerGroup.Delete("/{id}", handler.DeleteTicketType)
	})
}

// CreateTicketType handles the creation of a new ticket type.
// @Summary Create a new ticket type
// @Description Create a sellable ticket category for an event.
// @Tags TicketType
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketTypeRequest true "Create Ticket Type Request"
// @Success 201 {object} response.Message "Ticket type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ticket-types [post]
// @Security BearerAuth
func (handler *Handler) CreateTicketType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTicketType")
	defer scope.End()

	req := dto.CreateTicketTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create ticket type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket type created successfully")

	response.WithMessage(w, http.StatusCreated, "Ticket type created successfully")
}

// GetTicketTypes retrieves all ticket types based on query parameters.
// @Summary Get all ticket types
// @Description Retrieve all ticket types with optional filtering and pagination.
// @Tags TicketType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_id query string false "Filter by event"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetTicketTypesResponse] "List of ticket types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ticket-types [get]
func (handler *Handler) GetTicketTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTicketTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldEventID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	ticketTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ticket types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket types retrieved successfully")

	response.WithJSON(w, http.StatusOK, ticketTypes)
}

// GetTicketTypeByID retrieves a ticket type by its ID.
// @Summary Get a ticket type by ID
// @Description Retrieve a ticket type by its unique identifier.
// @Tags TicketType
// @Accept json
// @Produce json
// @Param id path string true "Ticket Type ID"
// @Success 200 {object} response.Data[dto.TicketTypeResponse] "Ticket type details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ticket-types/{id} [get]
func (handler *Handler) GetTicketTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTicketTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	ticketType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ticket type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket type retrieved successfully")

	response.WithJSON(w, http.StatusOK, ticketType)
}

// UpdateTicketType updates an existing ticket type by its ID.
// @Summary Update a ticket type by ID
// @Description Update name, price, or capacity. Capacity cannot drop below tickets already sold.
// @Tags TicketType
// @Accept json
// @Produce json
// @Param id path string true "Ticket Type ID"
// @Param request body dto.UpdateTicketTypeRequest true "Update Ticket Type Request"
// @Success 200 {object} response.Message "Ticket type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ticket-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTicketType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTicketType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTicketTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update ticket type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket type updated successfully")

	response.WithMessage(w, http.StatusOK, "Ticket type updated successfully")
}

// DeleteTicketType deletes a ticket type by its ID.
// @Summary Delete a ticket type by ID
// @Description Delete a ticket type that has no sold tickets.
// @Tags TicketType
// @Accept json
// @Produce json
// @Param id path string true "Ticket Type ID"
// @Success 200 {object} response.Message "Ticket type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ticket-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTicketType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTicketType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete ticket type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket type deleted successfully")

	response.WithMessage(w, http.StatusOK, "Ticket type deleted successfully")
}
