package ticket

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/ticket/model"
	"nox/internal/domains/ticket/model/dto"
	"nox/internal/domains/ticket/service"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ticket
	otel    otel.Otel
}

func New(service service.Ticket, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tickets", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.PurchaseTicket)
		routerGroup.Get("/", handler.GetTickets)
		routerGroup.Get("/{id}", handler.GetTicketByID)
		routerGroup.Post("/{id}/use", handler.UseTicket)
		routerGroup.Post("/{id}/refund", handler.RefundTicket)
		routerGroup.Delete("/{id}", handler.DeleteTicket)
	})
}

// PurchaseTicket sells one ticket of the given type.
// @Summary Purchase a ticket
// @Description Buy one ticket of a type. Fails with 409 once the type sells out.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param request body dto.PurchaseTicketRequest true "Purchase Ticket Request"
// @Success 201 {object} response.Data[dto.TicketResponse] "Ticket purchased successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets [post]
// @Security BearerAuth
func (handler *Handler) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PurchaseTicket")
	defer scope.End()

	req := dto.PurchaseTicketRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	ticket, err := handler.service.Purchase(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to purchase ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket purchased successfully")

	response.WithJSON(w, http.StatusCreated, ticket)
}

// GetTickets retrieves all tickets based on query parameters.
// @Summary Get all tickets
// @Description Retrieve all tickets with optional filtering and pagination.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_id query string false "Filter by event"
// @Param user_id query string false "Filter by holder"
// @Param ticket_type_id query string false "Filter by ticket type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetTicketsResponse] "List of tickets"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets [get]
// @Security BearerAuth
func (handler *Handler) GetTickets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTickets")
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
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldUserID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTicketTypeID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldTicketTypeID),
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

	tickets, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tickets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tickets retrieved successfully")

	response.WithJSON(w, http.StatusOK, tickets)
}

// GetTicketByID retrieves a ticket by its ID.
// @Summary Get a ticket by ID
// @Description Retrieve a ticket by its unique identifier.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Data[dto.TicketResponse] "Ticket details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTicketByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	ticket, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ticket by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket retrieved successfully")

	response.WithJSON(w, http.StatusOK, ticket)
}

// UseTicket marks a purchased ticket as used at the door.
// @Summary Use a ticket
// @Description Mark a purchased ticket as used. Fails with 409 for already used or refunded tickets.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Message "Ticket used successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets/{id}/use [post]
// @Security BearerAuth
func (handler *Handler) UseTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UseTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Use(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to use ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket used successfully")

	response.WithMessage(w, http.StatusOK, "Ticket used successfully")
}

// RefundTicket refunds a purchased ticket and frees its slot.
// @Summary Refund a ticket
// @Description Refund a purchased ticket, return its slot to the pool, and record the refund.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Message "Ticket refunded successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets/{id}/refund [post]
// @Security BearerAuth
func (handler *Handler) RefundTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefundTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Refund(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refund ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket refunded successfully")

	response.WithMessage(w, http.StatusOK, "Ticket refunded successfully")
}

// DeleteTicket deletes a used or refunded ticket by its ID.
// @Summary Delete a ticket by ID
// @Description Delete a ticket. Purchased tickets must be refunded first.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Message "Ticket deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket deleted successfully")

	response.WithMessage(w, http.StatusOK, "Ticket deleted successfully")
}
