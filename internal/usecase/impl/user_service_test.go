package impl

import (
	"context"
	"testing"

	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *fakeUserRepo
	faultRepo    *fakeFaultRepo
	userFileRepo *fakeUserFileRepo
	fileUsecase  *fakeFileUsecase
	mailer       *fakeMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	faultRepo := newFakeFaultRepo()
	userFileRepo := newFakeUserFileRepo()
	fileUsecase := &fakeFileUsecase{}
	mailer := &fakeMailer{}

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		FaultRepo:    faultRepo,
		UserFileRepo: userFileRepo,
		FileUsecase:  fileUsecase,
		Hasher:       &fakeHasher{},
		Mailer:       mailer,
		Logger:       discardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		faultRepo:    faultRepo,
		userFileRepo: userFileRepo,
		fileUsecase:  fileUsecase,
		mailer:       mailer,
	}
}

func TestUserService_CreateUser_HashesPasswordAndSendsMail(t *testing.T) {
	fixtures := createTestUserService(t)

	userID, err := fixtures.service.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "ana@example.com",
		Password: "secret",
		Name:     "Ana",
		LastName: "García",
	})

	require.NoError(t, err)
	require.Len(t, fixtures.userRepo.saved, 1)
	assert.Equal(t, "hashed:secret", fixtures.userRepo.saved[0].Password)
	assert.Equal(t, userID, fixtures.userRepo.saved[0].UserID)
	assert.Equal(t, []string{"ana@example.com"}, fixtures.mailer.sent)
}

func TestUserService_CreateUser_MailFailureDoesNotAbort(t *testing.T) {
	fixtures := createTestUserService(t)
	fixtures.mailer.sendErr = errors.New("smtp down")

	userID, err := fixtures.service.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "ana@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.NotZero(t, userID)
}

func TestUserService_SearchUsers_RejectsEmptyFilters(t *testing.T) {
	fixtures := createTestUserService(t)

	_, err := fixtures.service.SearchUsers(context.Background(), repository.UserFilters{})

	assert.Equal(t, domainerrors.ErrNoFilters, err)
}

func TestUserService_UserByID_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	_, err := fixtures.service.UserByID(context.Background(), 99)

	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestUserService_UserFilesWithMetadata_MergesByFileID(t *testing.T) {
	fixtures := createTestUserService(t)
	for _, fileID := range []string{"aaa", "bbb", "ccc"} {
		_, err := fixtures.userFileRepo.SaveUserFile(context.Background(), &entity.UserFile{
			UserID: 7,
			FileID: fileID,
		})
		require.NoError(t, err)
	}
	// Metadata only exists for two of the three links, sorted by file id.
	fixtures.fileUsecase.metas = []*entity.FileMetadata{
		{FileID: "aaa", Name: "cedula.pdf", Container: "s3", SHA256: "h1"},
		{FileID: "ccc", Name: "contrato.pdf", Container: "s3", SHA256: "h3"},
	}

	files, err := fixtures.service.UserFilesWithMetadata(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "cedula.pdf", files[0].FileName)
	assert.Empty(t, files[1].FileName, "link without metadata keeps empty fields")
	assert.Equal(t, "contrato.pdf", files[2].FileName)
	assert.Equal(t, "h3", files[2].SHA256)
}

func TestUserService_AttachFile_LinksUploadedBlob(t *testing.T) {
	fixtures := createTestUserService(t)
	fixtures.fileUsecase.uploadOut = &usecase.UploadOutput{FileID: "file-a"}

	link, err := fixtures.service.AttachFile(context.Background(), usecase.AttachFileInput{
		UserID:     7,
		FileTypeID: 2,
		FileName:   "contrato.pdf",
		Content:    []byte("pdf"),
	})

	require.NoError(t, err)
	assert.NotZero(t, link.UserFileID)
	assert.Equal(t, "file-a", link.FileID)
	assert.Equal(t, int64(7), link.UserID)
}

func TestUserService_RemoveUserFile_ChecksOwnership(t *testing.T) {
	fixtures := createTestUserService(t)
	_, err := fixtures.userFileRepo.SaveUserFile(context.Background(), &entity.UserFile{
		UserID: 7,
		FileID: "file-a",
	})
	require.NoError(t, err)

	err = fixtures.service.RemoveUserFile(context.Background(), 8, "file-a")

	assert.Equal(t, domainerrors.ErrFileOwnership, err)
	assert.Empty(t, fixtures.fileUsecase.deleted)
}

func TestUserService_RemoveUserFile_UnlinksThenDeletesBlob(t *testing.T) {
	fixtures := createTestUserService(t)
	_, err := fixtures.userFileRepo.SaveUserFile(context.Background(), &entity.UserFile{
		UserID: 7,
		FileID: "file-a",
	})
	require.NoError(t, err)

	err = fixtures.service.RemoveUserFile(context.Background(), 7, "file-a")

	require.NoError(t, err)
	assert.Empty(t, fixtures.userFileRepo.links)
	assert.Equal(t, []string{"file-a"}, fixtures.fileUsecase.deleted)
}

func TestUserService_FaultLifecycle(t *testing.T) {
	fixtures := createTestUserService(t)

	faultID, err := fixtures.service.CreateFault(context.Background(), &entity.Fault{
		UserID: 7,
		Reason: "incapacidad médica",
	})
	require.NoError(t, err)

	fault, err := fixtures.service.FaultByID(context.Background(), faultID)
	require.NoError(t, err)
	assert.Equal(t, "incapacidad médica", fault.Reason)

	require.NoError(t, fixtures.service.DeleteFault(context.Background(), faultID))

	_, err = fixtures.service.FaultByID(context.Background(), faultID)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}
