package postable

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/postable/model"
	"nox/internal/domains/postable/model/dto"
	"nox/internal/domains/postable/service"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PosTable
	otel    otel.Otel
}

func New(service service.PosTable, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pos-tables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePosTable)
		routerGroup.Get("/", handler.GetPosTables)
		routerGroup.Get("/{id}", handler.GetPosTableByID)
		routerGroup.Patch("/{id}", handler.UpdatePosTable)
		routerGroup.Delete("/{id}", handler.DeletePosTable)
	})
}

// CreatePosTable registers a new floor table for the point of sale.
// @Summary Create a new POS table
// @Description Register a floor table for a club. Table numbers are unique per club.
// @Tags PosTable
// @Accept json
// @Produce json
// @Param request body dto.CreatePosTableRequest true "Create POS Table Request"
// @Success 201 {object} response.Message "POS table created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pos-tables [post]
// @Security BearerAuth
func (handler *Handler) CreatePosTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePosTable")
	defer scope.End()

	req := dto.CreatePosTableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pos table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("POS table created successfully")

	response.WithMessage(w, http.StatusCreated, "POS table created successfully")
}

// GetPosTables retrieves all POS tables based on query parameters.
// @Summary Get all POS tables
// @Description Retrieve all floor tables with optional filtering and pagination.
// @Tags PosTable
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param club_id query string false "Filter by club"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetPosTablesResponse] "List of POS tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pos-tables [get]
// @Security BearerAuth
func (handler *Handler) GetPosTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosTables")
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
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
		},
	}

	tables, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pos tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("POS tables retrieved successfully")

	response.WithJSON(w, http.StatusOK, tables)
}

// GetPosTableByID retrieves a POS table by its ID.
// @Summary Get a POS table by ID
// @Description Retrieve a floor table by its unique identifier.
// @Tags PosTable
// @Accept json
// @Produce json
// @Param id path string true "POS Table ID"
// @Success 200 {object} response.Data[dto.PosTableResponse] "POS table details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pos-tables/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPosTableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosTableByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	table, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pos table by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("POS table retrieved successfully")

	response.WithJSON(w, http.StatusOK, table)
}

// UpdatePosTable updates an existing POS table by its ID.
// @Summary Update a POS table by ID
// @Description Update table number, seats, or status. Empty payloads are rejected.
// @Tags PosTable
// @Accept json
// @Produce json
// @Param id path string true "POS Table ID"
// @Param request body dto.UpdatePosTableRequest true "Update POS Table Request"
// @Success 200 {object} response.Message "POS table updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pos-tables/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePosTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePosTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePosTableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pos table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("POS table updated successfully")

	response.WithMessage(w, http.StatusOK, "POS table updated successfully")
}

// DeletePosTable deletes a POS table by its ID.
// @Summary Delete a POS table by ID
// @Description Delete a floor table. Occupied tables cannot be deleted.
// @Tags PosTable
// @Accept json
// @Produce json
// @Param id path string true "POS Table ID"
// @Success 200 {object} response.Message "POS table deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pos-tables/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePosTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePosTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pos table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("POS table deleted successfully")

	response.WithMessage(w, http.StatusOK, "POS table deleted successfully")
}
