package feedback

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/feedback/model"
	"nox/internal/domains/feedback/model/dto"
	"nox/internal/domains/feedback/service"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/feedback", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFeedback)
		routerGroup.Get("/", handler.GetFeedback)
		routerGroup.Get("/{id}", handler.GetFeedbackByID)
		routerGroup.Patch("/{id}", handler.UpdateFeedback)
		routerGroup.Delete("/{id}", handler.DeleteFeedback)
	})
}

// CreateFeedback submits feedback for an event.
// @Summary Create feedback
// @Description Submit a rating with optional comment and photos for an event. One submission per user per event.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Create Feedback Request"
// @Success 201 {object} response.Message "Feedback created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/feedback [post]
// @Security BearerAuth
func (handler *Handler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFeedback")
	defer scope.End()

	req := dto.CreateFeedbackRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create feedback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedback created successfully")

	response.WithMessage(w, http.StatusCreated, "Feedback created successfully")
}

// GetFeedback retrieves all feedback based on query parameters.
// @Summary Get all feedback
// @Description Retrieve all feedback with optional filtering and pagination.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_id query string false "Filter by event"
// @Param user_id query string false "Filter by author"
// @Param rating query integer false "Filter by rating"
// @Success 200 {object} response.Data[dto.GetFeedbackResponse] "List of feedback"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/feedback [get]
func (handler *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedback")
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
		},
	}

	if rating, err := shared.ConvertStringToInt(r.URL.Query().Get(model.FieldRating)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRating,
			Operator: gDto.FilterOperatorEq,
			Value:    rating,
			Table:    model.TableName,
		})
	}

	feedback, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get feedback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedback retrieved successfully")

	response.WithJSON(w, http.StatusOK, feedback)
}

// GetFeedbackByID retrieves feedback by its ID.
// @Summary Get feedback by ID
// @Description Retrieve feedback by its unique identifier.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} response.Data[dto.FeedbackResponse] "Feedback details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/feedback/{id} [get]
func (handler *Handler) GetFeedbackByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedbackByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	feedback, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get feedback by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedback retrieved successfully")

	response.WithJSON(w, http.StatusOK, feedback)
}

// UpdateFeedback updates existing feedback by its ID.
// @Summary Update feedback by ID
// @Description Adjust the rating or comment of existing feedback. Empty payloads are rejected.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body dto.UpdateFeedbackRequest true "Update Feedback Request"
// @Success 200 {object} response.Message "Feedback updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/feedback/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFeedback")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFeedbackRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update feedback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedback updated successfully")

	response.WithMessage(w, http.StatusOK, "Feedback updated successfully")
}

// DeleteFeedback deletes feedback by its ID.
// @Summary Delete feedback by ID
// @Description Permanently remove feedback.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} response.Message "Feedback deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/feedback/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFeedback")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete feedback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedback deleted successfully")

	response.WithMessage(w, http.StatusOK, "Feedback deleted successfully")
}
