package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type stubObjectStorage struct {
	uploadFn   func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	downloadFn func(ctx context.Context, key string) (io.ReadCloser, error)
	deleteFn   func(ctx context.Context, key string) error
}

func (s *stubObjectStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if s.uploadFn == nil {
		return nil
	}
	return s.uploadFn(ctx, key, r, size, contentType)
}

func (s *stubObjectStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.downloadFn == nil {
		return nil, domain.ErrFileNotFound
	}
	return s.downloadFn(ctx, key)
}

func (s *stubObjectStorage) Delete(ctx context.Context, key string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, key)
}

func TestFileService_Upload(t *testing.T) {
	var uploadedKey, uploadedType string
	var uploadedBody []byte
	store := &stubObjectStorage{
		uploadFn: func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
			uploadedKey = key
			uploadedType = contentType
			body, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			uploadedBody = body
			return nil
		},
	}
	var stored *domain.File
	files := &stubFileRepository{
		createFn: func(ctx context.Context, file *domain.File) (*domain.File, error) {
			stored = file
			return file, nil
		},
	}
	svc := NewFileService(store, files, zerolog.Nop())

	id, err := svc.Upload(context.Background(), "alice", ports.FileUpload{
		FileName:    "cat.png",
		ContentType: "image/png",
		Size:        4,
		Reader:      strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if id == "" || uploadedKey != id {
		t.Fatalf("object key %q does not match id %q", uploadedKey, id)
	}
	if uploadedType != "image/png" || string(uploadedBody) != "data" {
		t.Fatalf("unexpected object: type=%s body=%q", uploadedType, uploadedBody)
	}
	if stored == nil || stored.FileName != "cat.png" || stored.Uploader != "alice" {
		t.Fatalf("unexpected metadata: %+v", stored)
	}
}

func TestFileService_Upload_DefaultsContentType(t *testing.T) {
	var uploadedType string
	store := &stubObjectStorage{
		uploadFn: func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
			uploadedType = contentType
			return nil
		},
	}
	svc := NewFileService(store, &stubFileRepository{}, zerolog.Nop())

	if _, err := svc.Upload(context.Background(), "alice", ports.FileUpload{Reader: strings.NewReader("x"), Size: 1}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if uploadedType != "application/octet-stream" {
		t.Fatalf("expected octet-stream default, got %q", uploadedType)
	}
}

func TestFileService_Upload_CleansUpOrphanedObject(t *testing.T) {
	var deletedKey string
	store := &stubObjectStorage{
		deleteFn: func(ctx context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}
	repoErr := errors.New("write failed")
	files := &stubFileRepository{
		createFn: func(ctx context.Context, file *domain.File) (*domain.File, error) {
			return nil, repoErr
		},
	}
	svc := NewFileService(store, files, zerolog.Nop())

	_, err := svc.Upload(context.Background(), "alice", ports.FileUpload{Reader: strings.NewReader("x"), Size: 1})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if deletedKey == "" {
		t.Fatalf("orphaned object was not removed")
	}
}

func TestFileService_Download(t *testing.T) {
	store := &stubObjectStorage{
		downloadFn: func(ctx context.Context, key string) (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte("data"))), nil
		},
	}
	files := &stubFileRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.File, error) {
			return &domain.File{ID: id, FileName: "cat.png", ContentType: "image/png"}, nil
		},
	}
	svc := NewFileService(store, files, zerolog.Nop())

	dl, err := svc.Download(context.Background(), "f1")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer dl.Content.Close()

	if dl.FileName != "cat.png" || dl.ContentType != "image/png" {
		t.Fatalf("unexpected download: %+v", dl)
	}
	body, err := io.ReadAll(dl.Content)
	if err != nil || string(body) != "data" {
		t.Fatalf("unexpected body: %q (%v)", body, err)
	}
}

func TestFileService_Download_UnknownID(t *testing.T) {
	svc := NewFileService(&stubObjectStorage{}, &stubFileRepository{}, zerolog.Nop())

	if _, err := svc.Download(context.Background(), "gone"); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestFileService_Delete(t *testing.T) {
	var objectDeleted, rowDeleted bool
	store := &stubObjectStorage{
		deleteFn: func(ctx context.Context, key string) error {
			objectDeleted = true
			return nil
		},
	}
	files := &stubFileRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.File, error) {
			return &domain.File{ID: id}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			rowDeleted = true
			return nil
		},
	}
	svc := NewFileService(store, files, zerolog.Nop())

	if err := svc.Delete(context.Background(), "f1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !objectDeleted || !rowDeleted {
		t.Fatalf("incomplete delete: object=%v row=%v", objectDeleted, rowDeleted)
	}
}
