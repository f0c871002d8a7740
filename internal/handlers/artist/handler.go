package artist

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/artist/model"
	"nox/internal/domains/artist/model/dto"
	"nox/internal/domains/artist/service"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Artist
	otel    otel.Otel
}

func New(service service.Artist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/artists", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateArtist)
		routerGroup.Get("/", handler.GetArtists)
		routerGroup.Get("/{id}", handler.GetArtistByID)
		routerGroup.Patch("/{id}", handler.UpdateArtist)
		routerGroup.Delete("/{id}", handler.DeleteArtist)
	})
}

// CreateArtist handles the creation of a new artist profile.
// @Summary Create a new artist
// @Description Create a new artist with the provided details.
// @Tags Artist
// @Accept json
// @Produce json
// @Param request body dto.CreateArtistRequest true "Create Artist Request"
// @Success 201 {object} response.Message "Artist created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists [post]
// @Security BearerAuth
func (handler *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArtist")
	defer scope.End()

	req := dto.CreateArtistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create artist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist created successfully")

	response.WithMessage(w, http.StatusCreated, "Artist created successfully")
}

// GetArtists retrieves all artists based on query parameters.
// @Summary Get all artists
// @Description Retrieve all artists with optional filtering and pagination.
// @Tags Artist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param genre query string false "Filter by genre"
// @Param city query string false "Filter by city"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetArtistsResponse] "List of artists"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists [get]
func (handler *Handler) GetArtists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtists")
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
				Field:    model.FieldGenre,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldGenre),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCity,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCity),
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

	artists, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artists")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artists retrieved successfully")

	response.WithJSON(w, http.StatusOK, artists)
}

// GetArtistByID retrieves an artist by their ID.
// @Summary Get an artist by ID
// @Description Retrieve an artist by their unique identifier.
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Data[dto.ArtistResponse] "Artist details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [get]
func (handler *Handler) GetArtistByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtistByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	artist, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artist by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist retrieved successfully")

	response.WithJSON(w, http.StatusOK, artist)
}

// UpdateArtist updates an existing artist by their ID.
// @Summary Update an artist by ID
// @Description Update the details of an existing artist.
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Param request body dto.UpdateArtistRequest true "Update Artist Request"
// @Success 200 {object} response.Message "Artist updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArtist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateArtistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update artist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist updated successfully")

	response.WithMessage(w, http.StatusOK, "Artist updated successfully")
}

// DeleteArtist deletes an artist by their ID.
// @Summary Delete an artist by ID
// @Description Delete an artist using their unique identifier.
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Message "Artist deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArtist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete artist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist deleted successfully")

	response.WithMessage(w, http.StatusOK, "Artist deleted successfully")
}
