package repository

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/errors"
)

// ErrFileNotFound is returned when no metadata document matches the lookup.
var ErrFileNotFound = errors.New("file metadata not found")

// FileMetadataRepository is the contract for the document-store collection
// holding blob metadata. Blobs themselves live in object storage.
type FileMetadataRepository interface {
	ByID(ctx context.Context, fileID string) (*entity.FileMetadata, error)
	ByIDs(ctx context.Context, fileIDs []string) ([]*entity.FileMetadata, error)
	// BySHA256 supports content dedup before uploading a new blob.
	BySHA256(ctx context.Context, sha256 string) (*entity.FileMetadata, error)
	Insert(ctx context.Context, meta *entity.FileMetadata) (string, error)
	Delete(ctx context.Context, fileID string) error
}
