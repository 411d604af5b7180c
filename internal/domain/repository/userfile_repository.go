package repository

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/errors"
)

// ErrUserFileNotFound is returned when no link row matches the lookup.
var ErrUserFileNotFound = errors.New("user file not found")

// UserFileRepository is the contract for the employee↔document link table and
// the document-type catalog.
type UserFileRepository interface {
	AllFileTypes(ctx context.Context) ([]*entity.FileType, error)
	SaveFileType(ctx context.Context, fileType *entity.FileType) (int64, error)
	UpdateFileType(ctx context.Context, fileTypeID int64, fileType *entity.FileType) error
	DeleteFileType(ctx context.Context, fileTypeID int64) error

	AllUserFiles(ctx context.Context) ([]*entity.UserFile, error)
	UserFilesByUserID(ctx context.Context, userID int64) ([]*entity.UserFile, error)
	UserFileByUserAndFile(ctx context.Context, userID int64, fileID string) (*entity.UserFile, error)
	SaveUserFile(ctx context.Context, link *entity.UserFile) (int64, error)
	DeleteUserFile(ctx context.Context, userFileID int64) error
}
