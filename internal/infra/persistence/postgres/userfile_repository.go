package postgres

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userFileRepository implements repository.UserFileRepository using GORM.
type userFileRepository struct {
	db *gorm.DB
}

// NewUserFileRepository is the constructor for userFileRepository.
func NewUserFileRepository(db *gorm.DB) repository.UserFileRepository {
	return &userFileRepository{db: db}
}

// AllFileTypes lists the document-type catalog.
func (repo *userFileRepository) AllFileTypes(ctx context.Context) ([]*entity.FileType, error) {
	var rows []*model.FileTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllFileTypes).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list file types")
	}

	types := make([]*entity.FileType, 0, len(rows))
	for _, row := range rows {
		types = append(types, &entity.FileType{
			FileTypeID:  row.FileTypeID,
			Name:        row.Name,
			IsMandatory: row.IsMandatory,
		})
	}

	return types, nil
}

// SaveFileType persists a new document type and returns the generated id.
func (repo *userFileRepository) SaveFileType(ctx context.Context, fileType *entity.FileType) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveFileType, fromFileTypeDomain(fileType))
}

// UpdateFileType rewrites a document type.
func (repo *userFileRepository) UpdateFileType(ctx context.Context, fileTypeID int64, fileType *entity.FileType) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateFileType, fromFileTypeDomain(fileType), fileTypeID)
}

// DeleteFileType removes a document type permanently.
func (repo *userFileRepository) DeleteFileType(ctx context.Context, fileTypeID int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteFileType, fileTypeID)
}

// AllUserFiles lists every employee↔document link.
func (repo *userFileRepository) AllUserFiles(ctx context.Context) ([]*entity.UserFile, error) {
	var rows []*model.UserFileRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllUserFiles).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user files")
	}

	return toUserFilesDomain(rows), nil
}

// UserFilesByUserID lists the document links of one employee, ordered by
// file id so callers can merge against metadata with a binary search.
func (repo *userFileRepository) UserFilesByUserID(ctx context.Context, userID int64) ([]*entity.UserFile, error) {
	var rows []*model.UserFileRow
	if err := repo.db.WithContext(ctx).Raw(sqlUserFilesByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user files by user")
	}

	return toUserFilesDomain(rows), nil
}

// UserFileByUserAndFile retrieves the link row binding one employee to one
// stored document. Ownership checks go through here before any delete.
func (repo *userFileRepository) UserFileByUserAndFile(ctx context.Context, userID int64, fileID string) (*entity.UserFile, error) {
	var rows []*model.UserFileRow
	if err := repo.db.WithContext(ctx).Raw(sqlUserFileByUserAndFile, userID, fileID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user file")
	}
	if len(rows) == 0 {
		return nil, repository.ErrUserFileNotFound
	}

	return toUserFileDomain(rows[0]), nil
}

// SaveUserFile persists a new link row and returns the generated id.
func (repo *userFileRepository) SaveUserFile(ctx context.Context, link *entity.UserFile) (int64, error) {
	payload := &model.UserFilePayload{
		FileID:     link.FileID,
		FileTypeID: link.FileTypeID,
		UserID:     link.UserID,
	}

	return execProcedureSave(ctx, repo.db, sqlSaveUserFile, payload)
}

// DeleteUserFile removes a link row permanently.
func (repo *userFileRepository) DeleteUserFile(ctx context.Context, userFileID int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteUserFile, userFileID)
}

func toUserFileDomain(data *model.UserFileRow) *entity.UserFile {
	if data == nil {
		return nil
	}

	return &entity.UserFile{
		UserFileID:   data.UserFileID,
		FileTypeID:   data.FileTypeID,
		FileTypeName: data.FileTypeName,
		FileID:       data.FileID,
		UserID:       data.UserID,
	}
}

func toUserFilesDomain(rows []*model.UserFileRow) []*entity.UserFile {
	links := make([]*entity.UserFile, 0, len(rows))
	for _, row := range rows {
		links = append(links, toUserFileDomain(row))
	}

	return links
}

func fromFileTypeDomain(data *entity.FileType) *model.FileTypePayload {
	if data == nil {
		return nil
	}

	return &model.FileTypePayload{
		FileType:    data.Name,
		IsMandatory: data.IsMandatory,
	}
}
