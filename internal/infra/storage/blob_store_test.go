package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_PutGetDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewBucketStore(bucket)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "abc123", []byte("contenido")))

	data, err := store.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, []byte("contenido"), data)

	require.NoError(t, store.Delete(ctx, "abc123"))

	_, err = store.Get(ctx, "abc123")
	assert.Error(t, err)
}

func TestBucketStore_GetMissingKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewBucketStore(bucket)

	_, err := store.Get(context.Background(), "no-such-key")
	assert.Error(t, err)
}
