package impl

import (
	"context"
	"testing"

	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fileServiceFixtures struct {
	service      usecase.FileUsecase
	metadataRepo *fakeMetadataRepo
	blobStore    *fakeBlobStore
}

func createTestFileService(t *testing.T) fileServiceFixtures {
	t.Helper()

	metadataRepo := newFakeMetadataRepo()
	blobStore := newFakeBlobStore()

	svc := NewFileService(FileServiceParams{
		MetadataRepo: metadataRepo,
		BlobStore:    blobStore,
		Logger:       discardLogger(),
	})

	return fileServiceFixtures{service: svc, metadataRepo: metadataRepo, blobStore: blobStore}
}

func TestFileService_UploadAndDownload(t *testing.T) {
	fixtures := createTestFileService(t)
	content := []byte("contrato firmado")

	out, err := fixtures.service.Upload(context.Background(), "contrato.pdf", content)

	require.NoError(t, err)
	assert.False(t, out.Reused)

	downloaded, err := fixtures.service.Download(context.Background(), out.FileID)
	require.NoError(t, err)
	assert.Equal(t, "contrato.pdf", downloaded.Name)
	assert.Equal(t, content, downloaded.Content)
}

func TestFileService_Upload_DeduplicatesByContent(t *testing.T) {
	fixtures := createTestFileService(t)
	content := []byte("mismo contenido")

	first, err := fixtures.service.Upload(context.Background(), "a.pdf", content)
	require.NoError(t, err)

	second, err := fixtures.service.Upload(context.Background(), "b.pdf", content)
	require.NoError(t, err)

	assert.True(t, second.Reused)
	assert.Equal(t, first.FileID, second.FileID)
	assert.Len(t, fixtures.blobStore.blobs, 1)
}

func TestFileService_Upload_RollsBackMetadataOnBlobFailure(t *testing.T) {
	fixtures := createTestFileService(t)
	fixtures.blobStore.putErr = errors.New("bucket unavailable")

	_, err := fixtures.service.Upload(context.Background(), "a.pdf", []byte("x"))

	require.Error(t, err)
	assert.Empty(t, fixtures.metadataRepo.docs, "orphan metadata must not survive a failed blob write")
	assert.Len(t, fixtures.metadataRepo.deleted, 1)
}

func TestFileService_Download_UnknownID(t *testing.T) {
	fixtures := createTestFileService(t)

	_, err := fixtures.service.Download(context.Background(), "missing")

	assert.Equal(t, domainerrors.ErrFileNotFound, err)
}

func TestFileService_Delete_RemovesBlobAndMetadata(t *testing.T) {
	fixtures := createTestFileService(t)
	out, err := fixtures.service.Upload(context.Background(), "a.pdf", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, fixtures.service.Delete(context.Background(), out.FileID))

	assert.Empty(t, fixtures.blobStore.blobs)
	assert.Empty(t, fixtures.metadataRepo.docs)
}
