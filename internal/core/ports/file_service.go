package ports

import (
	"context"
	"io"
)

// FileUpload is an incoming multipart file.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// FileDownload streams a stored object back to the client. The caller owns
// closing Content.
type FileDownload struct {
	FileName    string
	ContentType string
	Content     io.ReadCloser
}

type FileService interface {
	Upload(ctx context.Context, uploader string, in FileUpload) (string, error)
	Download(ctx context.Context, id string) (*FileDownload, error)
	Delete(ctx context.Context, id string) error
}
