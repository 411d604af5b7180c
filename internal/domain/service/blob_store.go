package service

import "context"

// BlobStore abstracts the object-storage backend holding file contents.
// Keys are content hashes; metadata lives in the document store.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
