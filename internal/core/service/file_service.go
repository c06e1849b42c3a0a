package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pulse-social/pulse-api/internal/api/metrics"
	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

// FileService stores file bytes in object storage and the metadata row in the
// file repository, keyed by a generated uuid.
type FileService struct {
	storage ports.ObjectStorage
	files   ports.FileRepository
	log     zerolog.Logger
}

func NewFileService(storage ports.ObjectStorage, files ports.FileRepository, log zerolog.Logger) *FileService {
	return &FileService{storage: storage, files: files, log: log}
}

func (s *FileService) Upload(ctx context.Context, uploader string, in ports.FileUpload) (string, error) {
	id := uuid.NewString()

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileName := in.FileName
	if fileName == "" {
		fileName = id
	}

	if err := s.storage.Upload(ctx, id, in.Reader, in.Size, contentType); err != nil {
		return "", fmt.Errorf("%w: upload %s: %w", domain.ErrFileStorage, id, err)
	}

	file := &domain.File{
		ID:          id,
		FileName:    fileName,
		ContentType: contentType,
		Uploader:    uploader,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.files.Create(ctx, file); err != nil {
		// Best effort cleanup of the orphaned object.
		if delErr := s.storage.Delete(ctx, id); delErr != nil {
			s.log.Warn().Err(delErr).Str("file_id", id).Msg("failed to remove orphaned object")
		}
		return "", err
	}

	metrics.FilesUploadedTotal.Inc()
	s.log.Info().Str("file_id", id).Str("uploader", uploader).Msg("file uploaded")
	return id, nil
}

func (s *FileService) Download(ctx context.Context, id string) (*ports.FileDownload, error) {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.storage.Download(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %w", domain.ErrFileStorage, id, err)
	}

	return &ports.FileDownload{
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Content:     content,
	}, nil
}

func (s *FileService) Delete(ctx context.Context, id string) error {
	if _, err := s.files.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete %s: %w", domain.ErrFileStorage, id, err)
	}
	return s.files.Delete(ctx, id)
}
