package domain

import (
	"errors"
	"time"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileStorage  = errors.New("file storage failure")
)

// File is the metadata record for an object kept in blob storage. The ID is
// the storage object key.
type File struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	FileName    string    `json:"file_name" bson:"file_name"`
	ContentType string    `json:"content_type" bson:"content_type"`
	Uploader    string    `json:"uploader" bson:"uploader"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
