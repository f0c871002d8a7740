package clubtable

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/clubtable/model"
	"nox/internal/domains/clubtable/model/dto"
	"nox/internal/domains/clubtable/service"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ClubTable
	otel    otel.Otel
}

func New(service service.ClubTable, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/club-tables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClubTable)
		routerGroup.Get("/", handler.GetClubTables)
		routerGroup.Get("/{id}", handler.GetClubTableByID)
		routerGroup.Patch("/{id}", handler.UpdateClubTable)
		routerGroup.Delete("/{id}", handler.DeleteClubTable)
	})
}

// CreateClubTable handles the creation of a new club table.
// @Summary Create a new club table
// @Description Create a new reservable table for a club.
// @Tags ClubTable
// @Accept json
// @Produce json
// @Param request body dto.CreateClubTableRequest true "Create Club Table Request"
// @Success 201 {object} response.Message "Club table created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/club-tables [post]
// @Security BearerAuth
func (handler *Handler) CreateClubTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClubTable")
	defer scope.End()

	req := dto.CreateClubTableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create club table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club table created successfully")

	response.WithMessage(w, http.StatusCreated, "Club table created successfully")
}

// GetClubTables retrieves all club tables based on query parameters.
// @Summary Get all club tables
// @Description Retrieve all club tables with optional filtering and pagination.
// @Tags ClubTable
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param club_id query string false "Filter by club"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetClubTablesResponse] "List of club tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/club-tables [get]
func (handler *Handler) GetClubTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClubTables")
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
		},
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	tables, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get club tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club tables retrieved successfully")

	response.WithJSON(w, http.StatusOK, tables)
}

// GetClubTableByID retrieves a club table by its ID.
// @Summary Get a club table by ID
// @Description Retrieve a club table by its unique identifier.
// @Tags ClubTable
// @Accept json
// @Produce json
// @Param id path string true "Club Table ID"
// @Success 200 {object} response.Data[dto.ClubTableResponse] "Club table details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/club-tables/{id} [get]
func (handler *Handler) GetClubTableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClubTableByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	table, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get club table by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club table retrieved successfully")

	response.WithJSON(w, http.StatusOK, table)
}

// UpdateClubTable updates an existing club table by its ID.
// @Summary Update a club table by ID
// @Description Update the label, capacity, or price of a club table. Availability is owned by reservations.
// @Tags ClubTable
// @Accept json
// @Produce json
// @Param id path string true "Club Table ID"
// @Param request body dto.UpdateClubTableRequest true "Update Club Table Request"
// @Success 200 {object} response.Message "Club table updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/club-tables/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClubTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClubTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateClubTableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update club table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club table updated successfully")

	response.WithMessage(w, http.StatusOK, "Club table updated successfully")
}

// DeleteClubTable deletes a club table by its ID.
// @Summary Delete a club table by ID
// @Description Delete a club table using its unique identifier.
// @Tags ClubTable
// @Accept json
// @Produce json
// @Param id path string true "Club Table ID"
// @Success 200 {object} response.Message "Club table deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/club-tables/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClubTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClubTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete club table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club table deleted successfully")

	response.WithMessage(w, http.StatusOK, "Club table deleted successfully")
}
