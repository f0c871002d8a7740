package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"nox/config"
	"nox/infras/otel"
	"nox/infras/s3"
	"nox/internal/domains/media/model/dto"
	"nox/shared/constant"
	"nox/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const bytesPerMB = 1 << 20

// Media stores uploads in object storage. There is no database row behind an
// upload; the object store is the system of record.
type Media interface {
	Upload(ctx context.Context, req dto.UploadMediaRequest) (dto.UploadMediaResponse, error)
	List(ctx context.Context) (dto.ListMediaResponse, error)
	Delete(ctx context.Context, fileName string) error
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) Media {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadMediaRequest) (res dto.UploadMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validateUpload(req); err != nil {
		return res, err
	}

	fileName := objectName(req.FileHeader.Filename)

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, s.cfg.Media.Directory, req.File, req.FileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.FromUpload(url, fileName)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.ListMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	names, err := s.s3.ListFiles(ctx, s.cfg.External.S3.BucketName, s.cfg.Media.Directory)
	if err != nil {
		log.Error().Err(err).Msg("failed to list files from S3")

		return res, fmt.Errorf("failed to list files from S3: %w", err)
	}

	res.Files = names

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, fileName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if fileName == constant.Empty || fileName != filepath.Base(fileName) {
		return failure.BadRequestFromString("invalid file name") // nolint:wrapcheck
	}

	if err = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, s.cfg.Media.Directory, fileName); err != nil {
		log.Error().Err(err).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *serviceImpl) validateUpload(req dto.UploadMediaRequest) error {
	if req.FileHeader.Size > int64(s.cfg.Media.MaxSizeMB*bytesPerMB) {
		return failure.BadRequestFromString(fmt.Sprintf("file exceeds the %.0f MB limit", s.cfg.Media.MaxSizeMB))
	}

	contentType := req.FileHeader.Header.Get("Content-Type")
	if !slices.Contains(s.cfg.Media.AllowedTypes, contentType) {
		return failure.BadRequestFromString(fmt.Sprintf("content type %s is not allowed", contentType))
	}

	return nil
}

// objectName keeps the original extension on a randomized name.
func objectName(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}
