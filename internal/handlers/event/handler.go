package event

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/event/model"
	"nox/internal/domains/event/model/dto"
	"nox/internal/domains/event/service"
	reservationModel "nox/internal/domains/reservation/model"
	reservationService "nox/internal/domains/reservation/service"
	tickettypeModel "nox/internal/domains/tickettype/model"
	tickettypeService "nox/internal/domains/tickettype/service"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service            service.Event
	reservationService reservationService.Reservation
	ticketTypeService  tickettypeService.TicketType
	otel               otel.Otel
}

func New(
	service service.Event,
	reservationService reservationService.Reservation,
	ticketTypeService tickettypeService.TicketType,
	otel otel.Otel,
) Handler {
	return Handler{
		service:            service,
		reservationService: reservationService,
		ticketTypeService:  ticketTypeService,
		otel:               otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Get("/{id}/reservations", handler.GetEventReservations)
		routerGroup.Get("/{id}/ticket-types", handler.GetEventTicketTypes)
		routerGroup.Patch("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
	})
}

// CreateEvent creates a new event under a club.
// @Summary Create a new event
// @Description Create a new event in planning status, pending approval.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} response.Message "Event created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event created successfully")

	response.WithMessage(w, http.StatusCreated, "Event created successfully")
}

// GetEvents retrieves all events based on query parameters.
// @Summary Get all events
// @Description Retrieve all events with optional filtering and pagination.
// @Tags Event
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city"
// @Param club_id query string false "Filter by club"
// @Param status query string false "Filter by status"
// @Param mood query string false "Filter by mood"
// @Param approved query boolean false "Filter by approval"
// @Param date_from query string false "Events on or after this date (YYYY-MM-DD)"
// @Param date_to query string false "Events on or before this date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetEventsResponse] "List of events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCity,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCity),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldClubID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldClubID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldMood,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldMood),
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldEventDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    r.URL.Query().Get("date_from"),
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldEventDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    r.URL.Query().Get("date_to"),
				Table:    model.TableName,
			},
		},
	}

	if approved := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldApproved)); approved != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldApproved,
			Operator: gDto.FilterOperatorEq,
			Value:    *approved,
			Table:    model.TableName,
		})
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Events retrieved successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// GetEventByID retrieves an event by its ID.
// @Summary Get an event by ID
// @Description Retrieve an event by its unique identifier.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[dto.EventResponse] "Event details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [get]
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event retrieved successfully")

	response.WithJSON(w, http.StatusOK, event)
}

// GetEventReservations lists the table reservations of an event.
// @Summary Get an event's reservations
// @Description Retrieve the table reservations of an event, optionally filtered by status.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[reservationDto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetEventReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventReservations")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				Field:    reservationModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(reservationModel.FieldStatus),
				Table:    reservationModel.TableName,
			},
		},
	}

	reservations, err := handler.reservationService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetEventTicketTypes lists the ticket tiers of an event.
// @Summary Get an event's ticket types
// @Description Retrieve the ticket tiers of an event with their remaining capacity.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[tickettypeDto.GetTicketTypesResponse] "List of ticket types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/ticket-types [get]
func (handler *Handler) GetEventTicketTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventTicketTypes")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tickettypeModel.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    tickettypeModel.TableName,
			},
		},
	}

	ticketTypes, err := handler.ticketTypeService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event ticket types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event ticket types retrieved successfully")

	response.WithJSON(w, http.StatusOK, ticketTypes)
}

// UpdateEvent updates an existing event by its ID.
// @Summary Update an event by ID
// @Description Update event details, status, or approval. Empty payloads are rejected.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Update Event Request"
// @Success 200 {object} response.Message "Event updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event updated successfully")

	response.WithMessage(w, http.StatusOK, "Event updated successfully")
}

// DeleteEvent deletes an event by its ID.
// @Summary Delete an event by ID
// @Description Permanently remove an event. Use a status patch to cancel instead of deleting.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event deleted successfully")

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}
