// Package storage provides the object-storage implementation of the blob
// store contract using the gocloud.dev portable bucket API.
package storage

import (
	"context"

	"hrcore/config"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registers the s3:// bucket URL scheme.
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// bucketStore implements service.BlobStore over a gocloud bucket. Every key
// is namespaced under the configured prefix.
type bucketStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the configured bucket and returns it as a service.BlobStore.
func NewBlobStore(params Params) (service.BlobStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}
	if prefix := params.Config.Storage.Prefix; prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &bucketStore{bucket: bucket}, nil
}

// NewBucketStore wraps an already opened bucket. Tests use it with memblob.
func NewBucketStore(bucket *blob.Bucket) service.BlobStore {
	return &bucketStore{bucket: bucket}
}

// Put writes a blob under the given key.
func (s *bucketStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrap(err, "failed to write blob")
	}

	return nil
}

// Get reads the blob stored under the given key.
func (s *bucketStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read blob")
	}

	return data, nil
}

// Delete removes the blob stored under the given key.
func (s *bucketStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
