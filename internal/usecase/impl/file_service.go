package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"go.uber.org/fx"
)

// containerName marks which storage backend holds the blob.
const containerName = "s3"

// fileService implements the FileUsecase interface. Blobs are stored under
// their content hash, metadata in the document store; identical content is
// stored once and shared by id.
type fileService struct {
	metadataRepo repository.FileMetadataRepository
	blobStore    service.BlobStore
	logger       *slog.Logger
}

// FileServiceParams holds dependencies for fileService, injected by Fx.
type FileServiceParams struct {
	fx.In

	MetadataRepo repository.FileMetadataRepository
	BlobStore    service.BlobStore
	Logger       *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(params FileServiceParams) usecase.FileUsecase {
	return &fileService{
		metadataRepo: params.MetadataRepo,
		blobStore:    params.BlobStore,
		logger:       params.Logger,
	}
}

func (srv *fileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the blob and its metadata. Content already present, detected
// by hash, is not stored again; the existing metadata id is returned instead.
// If the blob write fails the metadata document is rolled back.
func (srv *fileService) Upload(ctx context.Context, name string, content []byte) (*usecase.UploadOutput, error) {
	sum := sha256.Sum256(content)
	digest := hex.EncodeToString(sum[:])

	existing, err := srv.metadataRepo.BySHA256(ctx, digest)
	if err == nil {
		srv.log(ctx).Debug("duplicate upload deduplicated", slog.String("fileId", existing.FileID))

		return &usecase.UploadOutput{FileID: existing.FileID, Reused: true}, nil
	}
	if !errors.Is(err, repository.ErrFileNotFound) {
		return nil, errors.Wrap(err, "failed to check for duplicate content")
	}

	meta := &entity.FileMetadata{
		Name:      name,
		Container: containerName,
		SHA256:    digest,
	}

	fileID, err := srv.metadataRepo.Insert(ctx, meta)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert file metadata")
	}

	if err := srv.blobStore.Put(ctx, digest, content); err != nil {
		if rollbackErr := srv.metadataRepo.Delete(ctx, fileID); rollbackErr != nil {
			srv.log(ctx).Error("metadata rollback failed",
				slog.String("fileId", fileID), slog.Any("error", rollbackErr))
		}

		return nil, errors.Wrap(err, "failed to store blob")
	}

	srv.log(ctx).Info("file stored", slog.String("fileId", fileID), slog.String("sha256", digest))

	return &usecase.UploadOutput{FileID: fileID}, nil
}

func (srv *fileService) Download(ctx context.Context, fileID string) (*usecase.DownloadOutput, error) {
	meta, err := srv.metadataRepo.ByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to load file metadata")
	}

	content, err := srv.blobStore.Get(ctx, meta.SHA256)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read blob")
	}

	return &usecase.DownloadOutput{Name: meta.Name, Content: content}, nil
}

func (srv *fileService) Delete(ctx context.Context, fileID string) error {
	meta, err := srv.metadataRepo.ByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return domainerrors.ErrFileNotFound
		}

		return errors.Wrap(err, "failed to load file metadata")
	}

	if err := srv.blobStore.Delete(ctx, meta.SHA256); err != nil {
		return errors.Wrap(err, "failed to delete blob")
	}

	return srv.metadataRepo.Delete(ctx, fileID)
}

func (srv *fileService) MetadataByIDs(ctx context.Context, fileIDs []string) ([]*entity.FileMetadata, error) {
	return srv.metadataRepo.ByIDs(ctx, fileIDs)
}
