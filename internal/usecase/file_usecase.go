package usecase

import (
	"context"

	"hrcore/internal/domain/entity"
)

// UploadOutput reports where an uploaded blob ended up. Reused is true when
// an identical blob already existed and its metadata id was returned instead
// of storing a duplicate.
type UploadOutput struct {
	FileID string
	Reused bool
}

// DownloadOutput carries a blob and the original file name for the
// attachment header.
type DownloadOutput struct {
	Name    string
	Content []byte
}

// FileUsecase defines the blob-storage operations. Blobs are keyed by
// content hash in object storage; their metadata lives in the document store.
type FileUsecase interface {
	// Upload stores the blob and its metadata, deduplicating by content hash.
	Upload(ctx context.Context, name string, content []byte) (*UploadOutput, error)
	Download(ctx context.Context, fileID string) (*DownloadOutput, error)
	Delete(ctx context.Context, fileID string) error
	// MetadataByIDs resolves metadata for a batch of ids, skipping unknown ones.
	MetadataByIDs(ctx context.Context, fileIDs []string) ([]*entity.FileMetadata, error)
}
