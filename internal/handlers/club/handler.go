package club

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/club/model"
	"nox/internal/domains/club/model/dto"
	"nox/internal/domains/club/service"
	clubtableModel "nox/internal/domains/clubtable/model"
	clubtableService "nox/internal/domains/clubtable/service"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Club
	tableService clubtableService.ClubTable
	otel         otel.Otel
}

func New(service service.Club, tableService clubtableService.ClubTable, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		tableService: tableService,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clubs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClub)
		routerGroup.Get("/", handler.GetClubs)
		routerGroup.Get("/{id}", handler.GetClubByID)
		routerGroup.Get("/{id}/tables", handler.GetClubTables)
		routerGroup.Patch("/{id}", handler.UpdateClub)
		routerGroup.Delete("/{id}", handler.DeleteClub)
	})
}

// CreateClub handles the creation of a new club.
// @Summary Create a new club
// @Description Create a new club with the provided details.
// @Tags Club
// @Accept multipart/form-data
// @Produce json
// @Param owner_id formData string true "Owner user ID"
// @Param name formData string true "Club name"
// @Param city formData string true "Club city"
// @Param address formData string false "Club address"
// @Param capacity formData integer false "Club capacity"
// @Param description formData string false "Club description"
// @Param mood formData string false "Club mood tag"
// @Param image formData file false "Club image"
// @Success 201 {object} response.Message "Club created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clubs [post]
// @Security BearerAuth
func (handler *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClub")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateClubRequest{
		OwnerID:     r.FormValue("owner_id"),
		Name:        r.FormValue("name"),
		City:        r.FormValue("city"),
		Address:     r.FormValue("address"),
		Description: r.FormValue("description"),
		Mood:        r.FormValue("mood"),
	}

	if capStr := r.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create club")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club created successfully")

	response.WithMessage(w, http.StatusCreated, "Club created successfully")
}

// GetClubs retrieves all clubs based on query parameters.
// @Summary Get all clubs
// @Description Retrieve all clubs with optional filtering and pagination.
// @Tags Club
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param city query string false "Filter by city"
// @Param mood query string false "Filter by mood"
// @Param owner_id query string false "Filter by owner"
// @Param approved query boolean false "Filter by approval status"
// @Success 200 {object} response.Data[dto.GetClubsResponse] "List of clubs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clubs [get]
func (handler *Handler) GetClubs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClubs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCity,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCity),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldMood,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldMood),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldOwnerID),
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

	clubs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clubs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clubs retrieved successfully")

	response.WithJSON(w, http.StatusOK, clubs)
}

// GetClubByID retrieves a club by its ID.
// @Summary Get a club by ID
// @Description Retrieve a club by its unique identifier.
// @Tags Club
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} response.Data[dto.ClubResponse] "Club details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clubs/{id} [get]
func (handler *Handler) GetClubByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClubByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	club, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get club by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club retrieved successfully")

	response.WithJSON(w, http.StatusOK, club)
}

// GetClubTables lists the tables belonging to a club.
// @Summary Get a club's tables
// @Description Retrieve the tables of a club, optionally filtered by availability.
// @Tags Club
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[clubtableDto.GetClubTablesResponse] "List of tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clubs/{id}/tables [get]
func (handler *Handler) GetClubTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClubTables")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    clubtableModel.FieldClubID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    clubtableModel.TableName,
			},
		},
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(clubtableModel.FieldAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    clubtableModel.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    clubtableModel.TableName,
		})
	}

	tables, err := handler.tableService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get club tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club tables retrieved successfully")

	response.WithJSON(w, http.StatusOK, tables)
}

// UpdateClub updates an existing club by its ID.
// @Summary Update a club by ID
// @Description Update the details of an existing club.
// @Tags Club
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Club ID"
// @Param name formData string false "Club name"
// @Param city formData string false "Club city"
// @Param address formData string false "Club address"
// @Param capacity formData integer false "Club capacity"
// @Param description formData string false "Club description"
// @Param mood formData string false "Club mood tag"
// @Param approved formData boolean false "Approval status"
// @Param image formData file false "Club image"
// @Success 200 {object} response.Message "Club updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clubs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClub")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateClubRequest{
		Name:        r.FormValue("name"),
		City:        r.FormValue("city"),
		Address:     r.FormValue("address"),
		Description: r.FormValue("description"),
		Mood:        r.FormValue("mood"),
	}

	if capStr := r.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	if approvedStr := r.FormValue("approved"); approvedStr != "" {
		req.Approved = shared.ConvertStringToBool(approvedStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update club")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club updated successfully")

	response.WithMessage(w, http.StatusOK, "Club updated successfully")
}

// DeleteClub deletes a club by its ID.
// @Summary Delete a club by ID
// @Description Delete a club using its unique identifier.
// @Tags Club
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} response.Message "Club deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clubs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClub")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete club")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Club deleted successfully")

	response.WithMessage(w, http.StatusOK, "Club deleted successfully")
}
