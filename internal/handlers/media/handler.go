package media

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/media/model/dto"
	"nox/internal/domains/media/service"
	"nox/shared/constant"
	"nox/shared/failure"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errNoFiles = failure.BadRequestFromString("no files provided")

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.UploadMedia)
		routerGroup.Post("/upload/multiple", handler.UploadMultipleMedia)
		routerGroup.Get("/", handler.GetMedia)
		routerGroup.Delete("/{filename}", handler.DeleteMedia)
	})
}

// UploadMedia uploads a single file to object storage.
// @Summary Upload a file
// @Description Upload a single image. Allowed types are jpeg, png, and webp, up to the configured size limit.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} response.Data[dto.UploadMediaResponse] "File uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMedia")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	res, err := handler.service.Upload(ctx, dto.UploadMediaRequest{File: file, FileHeader: fileHeader})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("File uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UploadMultipleMedia uploads several files to object storage in one request.
// @Summary Upload multiple files
// @Description Upload several images at once. The whole batch is rejected when any file fails validation.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Success 200 {object} response.Data[dto.UploadMultipleMediaResponse] "Files uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/upload/multiple [post]
// @Security BearerAuth
func (handler *Handler) UploadMultipleMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMultipleMedia")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	fileHeaders := r.MultipartForm.File[constant.FormFiles]
	if len(fileHeaders) == 0 {
		scope.AddEvent("No files provided")

		response.WithError(w, errNoFiles)

		return
	}

	res := dto.UploadMultipleMediaResponse{Files: make([]dto.UploadMediaResponse, 0, len(fileHeaders))}

	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to open file from form")

			response.WithError(w, err)

			return
		}

		uploaded, err := handler.service.Upload(ctx, dto.UploadMediaRequest{File: file, FileHeader: fileHeader})
		file.Close()

		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to upload file")

			response.WithError(w, err)

			return
		}

		res.Files = append(res.Files, uploaded)
	}

	scope.AddEvent("Files uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetMedia lists the uploaded files.
// @Summary List uploaded files
// @Description List the object names stored under the media directory.
// @Tags Media
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ListMediaResponse] "List of files"
// @Failure 500 {object} response.Error
// @Router /v1/media [get]
// @Security BearerAuth
func (handler *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMedia")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Media listed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteMedia removes an uploaded file by its object name.
// @Summary Delete a file
// @Description Remove a stored file by its object name.
// @Tags Media
// @Accept json
// @Produce json
// @Param filename path string true "Object name"
// @Success 200 {object} response.Message "File deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/{filename} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMedia")
	defer scope.End()

	fileName := chi.URLParam(r, "filename")

	if err := handler.service.Delete(ctx, fileName); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Media deleted successfully")

	response.WithMessage(w, http.StatusOK, "File deleted successfully")
}
